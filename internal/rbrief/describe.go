package rbrief

import "orbfeatures/internal/imaging"

// sample returns the box sum of the WindowxWindow neighborhood centered on
// patch-local point center+p, where center is the patch midpoint.
func sample(ii *imaging.IntegralImage, center Point, p Point) uint32 {
	left := center.X + p.X - HWindow
	top := center.Y + p.Y - HWindow
	right := left + Window - 1
	bottom := top + Window - 1
	return ii.RectSum(left, top, right, bottom)
}

// test evaluates a single rBRIEF bit: true if the box sum at P is greater
// than the box sum at Q.
func test(ii *imaging.IntegralImage, center Point, pair TestPair) bool {
	return sample(ii, center, pair.P) > sample(ii, center, pair.Q)
}

// Describe computes the rBRIEF descriptor for the feature at (x, y) with
// measured orientation angle, using bank to pick the nearest pre-rotated
// test set. It returns nil if the feature is too close to the image border
// for the full sampling patch to fit.
func Describe(bank *RBrief, image *imaging.Image, x, y int, angle float64) *Descriptor {
	if x < Radius || y < Radius || x+Radius >= image.Width || y+Radius >= image.Height {
		return nil
	}

	size := 2*Radius + 1
	patch := imaging.NewImage(size, size)
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			patch.Set(px, py, image.At(x-Radius+px, y-Radius+py))
		}
	}
	ii := imaging.NewIntegralImage(patch)
	center := Point{X: Radius, Y: Radius}

	set := bank.Bins[binIndex(angle)]

	var d Descriptor
	for i, pair := range set.Pairs {
		if test(ii, center, pair) {
			d.setBit(i)
		}
	}
	return &d
}
