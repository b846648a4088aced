package detector

import (
	"math"
	"testing"

	"orbfeatures/internal/imaging"
)

func TestOrientationHorizontalGradientIsZero(t *testing.T) {
	img := horizontalGradient(20, 20)
	if got := Orientation(img, 10, 10, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestOrientationTracksRotation(t *testing.T) {
	img := horizontalGradient(20, 20)

	piOver4 := math.Pi / 4.0
	rotated := rotateAboutCenter(img, piOver4)
	got := Orientation(rotated, 10, 10, 3)
	if math.Abs(got-piOver4) > 1e-6 {
		t.Fatalf("expected angle near pi/4, got %v", got)
	}

	rotated = rotateAboutCenter(img, 3*piOver4)
	got = Orientation(rotated, 10, 10, 3)
	if math.Abs(got-3*piOver4) > 1e-6 {
		t.Fatalf("expected angle near 3*pi/4, got %v", got)
	}
}

func horizontalGradient(w, h int) *imaging.Image {
	img := imaging.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, uint8(x*255/(w-1)))
		}
	}
	return img
}

// rotateAboutCenter rotates img by angle radians (counter-clockwise),
// nearest-neighbor, filling uncovered pixels with 0. Test-only helper.
func rotateAboutCenter(img *imaging.Image, angle float64) *imaging.Image {
	out := imaging.NewImage(img.Width, img.Height)
	cx := float64(img.Width) / 2
	cy := float64(img.Height) / 2
	cos, sin := math.Cos(angle), math.Sin(angle)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			// inverse rotation to find the source pixel
			sx := cos*dx + sin*dy + cx
			sy := -sin*dx + cos*dy + cy
			six, siy := int(math.Round(sx)), int(math.Round(sy))
			if img.InBounds(six, siy) {
				out.Set(x, y, img.At(six, siy))
			}
		}
	}
	return out
}
