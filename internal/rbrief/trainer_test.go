package rbrief

import "testing"

func TestTrainerMakeTestSetSize(t *testing.T) {
	tr := NewTrainer()
	size := Radius*4 + 1
	img := checkerboardImage(size)
	x, y := size/2, size/2

	for i := 0; i < 20; i++ {
		tr.Accumulate(img, x+i%3, y+i%5, float64(i)*0.1)
	}

	// An unfilled slot holds the zero pair, which overlaps; every pair
	// selected from AllPairs does not, so this checks all TestSetSize slots
	// were filled.
	set := tr.MakeTestSet()
	for _, pair := range set.Pairs {
		if !pair.Valid() {
			t.Fatalf("selected pair %+v invalid", pair)
		}
		if pair.Overlaps() {
			t.Fatalf("selected pair %+v overlaps; fewer than %d pairs selected", pair, TestSetSize)
		}
	}
}

func TestTrainerAccumulateIgnoresBorderFeatures(t *testing.T) {
	tr := NewTrainer()
	img := checkerboardImage(Radius*2 + 2)
	before := tr.history[0].Len()
	tr.Accumulate(img, 0, 0, 0)
	after := tr.history[0].Len()
	if before != after {
		t.Fatalf("expected border feature to be skipped, history grew from %d to %d", before, after)
	}
}
