package imaging

import "gocv.io/x/gocv"

// Gradients holds the horizontal and vertical Sobel responses of a patch,
// aligned pixel-for-pixel with the source.
type Gradients struct {
	width, height int
	ix, iy        []float32
}

// At returns the (Ix, Iy) gradient pair at (x, y).
func (g *Gradients) At(x, y int) (float64, float64) {
	i := y*g.width + x
	return float64(g.ix[i]), float64(g.iy[i])
}

// SobelGradients computes the horizontal and vertical Sobel gradients of
// patch using OpenCV's Sobel operator, treated here as the black-box
// gradient primitive the Harris scorer builds its structure tensor from.
func SobelGradients(patch *Image) *Gradients {
	src := gocv.NewMatWithSize(patch.Height, patch.Width, gocv.MatTypeCV8U)
	defer src.Close()
	for y := 0; y < patch.Height; y++ {
		for x := 0; x < patch.Width; x++ {
			src.SetUCharAt(y, x, patch.At(x, y))
		}
	}

	gx := gocv.NewMat()
	defer gx.Close()
	gy := gocv.NewMat()
	defer gy.Close()
	gocv.Sobel(src, &gx, gocv.MatTypeCV32F, 1, 0, 3, 1, 0, gocv.BorderReplicate)
	gocv.Sobel(src, &gy, gocv.MatTypeCV32F, 0, 1, 3, 1, 0, gocv.BorderReplicate)

	w, h := patch.Width, patch.Height
	g := &Gradients{width: w, height: h, ix: make([]float32, w*h), iy: make([]float32, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.ix[y*w+x] = gx.GetFloatAt(y, x)
			g.iy[y*w+x] = gy.GetFloatAt(y, x)
		}
	}
	return g
}
