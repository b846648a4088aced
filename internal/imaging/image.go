// Package imaging provides the 8-bit grayscale image type, file loading, and
// the image primitives (pyramid downsampling, Sobel gradients, integral
// images, FAST-9 corners) that the detection and description stages build on.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/tiff"
)

// Image is a rectangular array of 8-bit luminance samples, row-major.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the pixel value at (x, y). Out-of-bounds reads clamp to the
// nearest valid pixel, matching the pyramid's edge policy.
func (img *Image) At(x, y int) uint8 {
	x = clampInt(x, 0, img.Width-1)
	y = clampInt(y, 0, img.Height-1)
	return img.Pix[y*img.Width+x]
}

// Set writes the pixel value at (x, y). The caller must ensure the
// coordinates are in bounds.
func (img *Image) Set(x, y int, v uint8) {
	img.Pix[y*img.Width+x] = v
}

// InBounds reports whether (x, y) is within the image.
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromGray converts a standard library image.Image to a grayscale Image
// using the ITU-R BT.601 luminance weights.
func FromGray(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Fast luminance: (19595*R + 38470*G + 7471*B) >> 16
			out.Pix[y*w+x] = uint8((19595*(r>>8) + 38470*(g>>8) + 7471*(b>>8)) >> 16)
		}
	}
	return out
}

// Load reads an image file from disk and converts it to grayscale.
// Supports PNG, JPEG, and TIFF via the standard library and golang.org/x/image.
func Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromGray(src), nil
}

// SupportedFormats returns the list of file extensions Load understands.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat reports whether path has a format Load understands.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
