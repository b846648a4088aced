package imaging

import "gocv.io/x/gocv"

// FastCorner is a single FAST-9 candidate corner position.
type FastCorner struct {
	X, Y int
}

// FindFastCorners runs the FAST-9 corner detector (9 contiguous pixels on
// the Bresenham radius-3 circle, all brighter or all darker than center +/-
// threshold) over img. Non-maximum suppression is disabled: the caller
// re-scores every candidate with its own cornerness measure.
func FindFastCorners(img *Image, threshold int) []FastCorner {
	mat := gocv.NewMatWithSize(img.Height, img.Width, gocv.MatTypeCV8U)
	defer mat.Close()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			mat.SetUCharAt(y, x, img.At(x, y))
		}
	}

	detector := gocv.NewFastFeatureDetectorWithParams(threshold, false, gocv.FastFeatureDetectorType_9_16)
	defer detector.Close()

	keypoints := detector.Detect(mat)
	corners := make([]FastCorner, len(keypoints))
	for i, kp := range keypoints {
		corners[i] = FastCorner{X: int(kp.X), Y: int(kp.Y)}
	}
	return corners
}
