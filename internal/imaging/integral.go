package imaging

import "gocv.io/x/gocv"

// IntegralImage is a 2D prefix-sum table over a grayscale patch, enabling
// O(1) rectangle sums. Construction defers to OpenCV's integral image
// primitive (gocv.Integral); only the rectangle-sum bookkeeping on top of it
// is ours to get right.
type IntegralImage struct {
	width, height int
	sum           []int64 // (width+1) x (height+1), row-major, standard zero-padded layout
}

// NewIntegralImage computes the integral image of patch.
func NewIntegralImage(patch *Image) *IntegralImage {
	src := gocv.NewMatWithSize(patch.Height, patch.Width, gocv.MatTypeCV8U)
	defer src.Close()
	for y := 0; y < patch.Height; y++ {
		for x := 0; x < patch.Width; x++ {
			src.SetUCharAt(y, x, patch.At(x, y))
		}
	}

	sumMat := gocv.NewMat()
	defer sumMat.Close()
	sqsumMat := gocv.NewMat()
	defer sqsumMat.Close()
	tiltedMat := gocv.NewMat()
	defer tiltedMat.Close()
	gocv.Integral(src, &sumMat, &sqsumMat, &tiltedMat)

	// OpenCV's integral() produces the sum image as CV_32S for a CV_8U
	// source (no sdepth override is requested above), not CV_64F; read it
	// back with the matching signed-int accessor rather than GetDoubleAt,
	// which would reinterpret the int32 bit pattern as a float64.
	w, h := patch.Width, patch.Height
	ii := &IntegralImage{
		width:  w,
		height: h,
		sum:    make([]int64, (w+1)*(h+1)),
	}
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			ii.sum[y*(w+1)+x] = int64(sumMat.GetIntAt(y, x))
		}
	}
	return ii
}

// RectSum returns the sum of pixels in the inclusive rectangle
// [left, right] x [top, bottom].
func (ii *IntegralImage) RectSum(left, top, right, bottom int) uint32 {
	w := ii.width + 1
	at := func(x, y int) int64 { return ii.sum[y*w+x] }
	total := at(right+1, bottom+1) - at(left, bottom+1) - at(right+1, top) + at(left, top)
	return uint32(total)
}
