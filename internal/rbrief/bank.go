package rbrief

import "math"

// NumBins is the number of discrete orientation bins the bank precomputes.
// An orientation is snapped to the nearest multiple of BinStep and wrapped
// modulo NumBins, so the bins span [0, pi) and orientations pi apart share
// a bin.
const NumBins = 30

// BinStep is the angular width of one bin.
const BinStep = math.Pi / NumBins

// RBrief is a bank of NumBins pre-rotated TestSets, one per orientation bin,
// derived from a single trained base TestSet. Describing a feature rotates
// the sample geometry implicitly by picking the bin nearest the feature's
// measured orientation instead of rotating points at describe time.
type RBrief struct {
	Bins [NumBins]TestSet
}

// FromTestSet builds a bank from a base TestSet by rotating it by k*BinStep
// for each bin k.
func FromTestSet(base TestSet) *RBrief {
	var bank RBrief
	for k := 0; k < NumBins; k++ {
		bank.Bins[k] = RotateTestSet(base, float64(k)*BinStep)
	}
	return &bank
}

// binIndex maps an orientation in radians to the nearest bin, wrapping
// modulo NumBins.
func binIndex(angle float64) int {
	k := int(math.Floor(angle/BinStep + 0.5))
	k %= NumBins
	if k < 0 {
		k += NumBins
	}
	return k
}
