package detector

import (
	"testing"

	"orbfeatures/internal/imaging"
)

func uniformImage(w, h int, v uint8) *imaging.Image {
	img := imaging.NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestHarrisFlatImageIsZero(t *testing.T) {
	img := uniformImage(8, 8, 128)
	if got := HarrisScore(img, 4, 4, 3); got != 0 {
		t.Fatalf("expected 0 on uniform image, got %v", got)
	}
}

func TestHarrisNearEdgeIsZero(t *testing.T) {
	img := uniformImage(8, 8, 128)
	if got := HarrisScore(img, 2, 2, 3); got != 0 {
		t.Fatalf("expected 0 near edge, got %v", got)
	}
	if got := HarrisScore(img, 7, 9, 3); got != 0 {
		t.Fatalf("expected 0 for out-of-bounds center, got %v", got)
	}
}

func TestHarrisConstantGradientIsNonPositive(t *testing.T) {
	img := imaging.NewImage(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, uint8(x*255/19))
		}
	}
	if got := HarrisScore(img, 10, 10, 3); got > 0 {
		t.Fatalf("expected <= 0 on constant gradient, got %v", got)
	}

	inverted := imaging.NewImage(20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inverted.Set(x, y, uint8(255-x*255/19))
		}
	}
	if got := HarrisScore(inverted, 10, 10, 3); got > 0 {
		t.Fatalf("expected <= 0 on inverted gradient, got %v", got)
	}
}

func TestHarrisQuadrantCornerIsPositive(t *testing.T) {
	img := uniformImage(8, 8, 255)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, 0)
		}
	}
	if got := HarrisScore(img, 4, 4, 3); got <= 0 {
		t.Fatalf("expected > 0 at quadrant corner, got %v", got)
	}

	rotated := rotate90(img)
	if got := HarrisScore(rotated, 4, 4, 3); got <= 0 {
		t.Fatalf("expected > 0 after 90 degree rotation, got %v", got)
	}

	inverted := uniformImage(8, 8, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inverted.Set(x, y, 255)
		}
	}
	if got := HarrisScore(inverted, 4, 4, 3); got <= 0 {
		t.Fatalf("expected > 0 under color inversion, got %v", got)
	}
}

// rotate90 rotates a square image 90 degrees clockwise, for testability only.
func rotate90(img *imaging.Image) *imaging.Image {
	out := imaging.NewImage(img.Height, img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Set(img.Height-1-y, x, img.At(x, y))
		}
	}
	return out
}
