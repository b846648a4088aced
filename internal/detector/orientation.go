package detector

import (
	"math"

	"orbfeatures/internal/imaging"
)

// Orientation estimates the intensity-centroid angle of image at (x, y)
// over a radius-(r+0.5) circular window. Returns 0 if (x, y) is within r of
// an image edge, by contract rather than as an error.
func Orientation(image *imaging.Image, x, y, r int) float64 {
	if x < r || y < r || x+r >= image.Width || y+r >= image.Height {
		return 0
	}

	var m10, m01 float64
	for _, o := range CircularWindow(float64(r) + 0.5) {
		p := float64(image.At(x+o.X, y+o.Y))
		m10 += float64(o.X) * p
		m01 += float64(o.Y) * p
	}
	return math.Atan2(m01, m10)
}
