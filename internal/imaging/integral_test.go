package imaging

import "testing"

// TestIntegralImageKnownBoxSum checks RectSum against a hand-computed sum
// rather than only self-consistency, so a corrupted read of the underlying
// OpenCV sum Mat (e.g. misinterpreting CV_32S cells as CV_64F) would be
// caught even though it is consistent between two identical inputs.
func TestIntegralImageKnownBoxSum(t *testing.T) {
	img := NewImage(4, 4)
	vals := [4][4]uint8{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, vals[y][x])
		}
	}

	ii := NewIntegralImage(img)

	// Whole image: sum of 1..16 = 136.
	if got := ii.RectSum(0, 0, 3, 3); got != 136 {
		t.Fatalf("RectSum(whole image) = %d, want 136", got)
	}

	// Top-left 2x2 box: 1+2+5+6 = 14.
	if got := ii.RectSum(0, 0, 1, 1); got != 14 {
		t.Fatalf("RectSum(top-left 2x2) = %d, want 14", got)
	}

	// Bottom-right 2x2 box: 11+12+15+16 = 54.
	if got := ii.RectSum(2, 2, 3, 3); got != 54 {
		t.Fatalf("RectSum(bottom-right 2x2) = %d, want 54", got)
	}

	// Single pixel at (2,1) = 7.
	if got := ii.RectSum(2, 1, 2, 1); got != 7 {
		t.Fatalf("RectSum(single pixel) = %d, want 7", got)
	}
}
