// Package orb composes the pyramid, corner detector, orientation
// estimator, rBRIEF descriptor, and LSH index into the end-to-end feature
// pipeline: find features in an image, describe them, and match two
// feature sets against each other.
package orb

import "orbfeatures/internal/rbrief"

// Config holds every tunable parameter of the pipeline. Zero-value Configs
// are not usable directly; call DefaultConfig or fill in every field.
type Config struct {
	// NumFeatures caps how many corners FindMultiscaleFeatures keeps,
	// after sorting by Harris score.
	NumFeatures int

	// FastThreshold is the FAST-9 intensity threshold passed to the
	// corner detector.
	FastThreshold int

	// NumPyramidLevels is how many downsampled levels BuildPyramid adds
	// beyond the source image.
	NumPyramidLevels int

	// RBriefBank is the pre-rotated test set bank used to compute
	// descriptors. Callers typically load this from disk via
	// rbrief.LoadTestSet + rbrief.FromTestSet.
	RBriefBank *rbrief.RBrief

	// LSHTables and LSHBits are the L (table count) and K (bits per
	// table) parameters of the matching index.
	LSHTables int
	LSHBits   int

	// LSHMaxDistance is the maximum Hamming distance FindMatches accepts
	// between a descriptor and its nearest neighbor.
	LSHMaxDistance int
}

// DefaultConfig returns the reference parameterization. Callers must still
// set RBriefBank, since there is no meaningful default test set.
func DefaultConfig() Config {
	return Config{
		NumFeatures:      500,
		FastThreshold:    32,
		NumPyramidLevels: 4,
		LSHTables:        10,
		LSHBits:          4,
		LSHMaxDistance:   15,
	}
}
