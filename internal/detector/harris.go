package detector

import (
	"math"

	"orbfeatures/internal/imaging"

	"gonum.org/v1/gonum/mat"
)

// HarrisScore computes the Harris cornerness of image at (x, y) over a
// (2r+1)x(2r+1) patch. Returns 0 if the patch would extend past an image
// edge, which is a contract (near-edge points are simply not corners for
// this scorer), not an error.
func HarrisScore(image *imaging.Image, x, y, r int) float64 {
	if x-r < 0 || y-r < 0 || x+r > image.Width-1 || y+r > image.Height-1 {
		return 0
	}

	size := 2*r + 1
	patch := imaging.NewImage(size, size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			patch.Set(i, j, image.At(x-r+i, y-r+j))
		}
	}
	grad := imaging.SobelGradients(patch)

	window := CircularWindow(float64(r) + 0.5)
	s := 1.0 / math.Pow(float64(len(window)), 4)

	var a00, a01, a11 float64
	for _, o := range window {
		ix, iy := grad.At(r+o.X, r+o.Y)
		a00 += ix * ix * s
		a01 += ix * iy * s
		a11 += iy * iy * s
	}

	m := mat.NewDense(2, 2, []float64{a00, a01, a01, a11})
	trace := a00 + a11
	return mat.Det(m) - 0.06*trace*trace
}
