// Package detector implements the multi-scale FAST + Harris corner detector
// and the intensity-centroid orientation estimator.
package detector

import (
	"math"
	"sort"

	"orbfeatures/internal/imaging"
)

// HarrisRadius is the window radius used for both Harris re-scoring and
// orientation estimation, matching the reference pipeline's fixed choice.
const HarrisRadius = 3

// Offset is a signed pixel offset within a circular sampling window.
type Offset struct {
	X, Y int
}

// CircularWindow returns the integer offsets (i, j) with i^2 + j^2 <= r^2,
// in the fixed iteration order: j from -floor(r) to floor(r), and for each
// j, i from -floor(sqrt(r^2-j^2)) to floor(sqrt(r^2-j^2)).
func CircularWindow(r float64) []Offset {
	jMax := int(math.Floor(r))
	var offsets []Offset
	for j := -jMax; j <= jMax; j++ {
		xMax := int(math.Floor(math.Sqrt(r*r - float64(j*j))))
		for i := -xMax; i <= xMax; i++ {
			offsets = append(offsets, Offset{X: i, Y: j})
		}
	}
	return offsets
}

// Corner is a detected keypoint position within one pyramid level.
type Corner struct {
	X, Y  int
	Score float64
	Level int
}

// FindFeatures runs FAST-9 corner detection on image at threshold, then
// re-scores every candidate with Harris cornerness on a radius-3 circular
// window. The returned corners are unsorted.
func FindFeatures(image *imaging.Image, threshold int) []Corner {
	candidates := imaging.FindFastCorners(image, threshold)
	corners := make([]Corner, len(candidates))
	for i, c := range candidates {
		corners[i] = Corner{
			X:     c.X,
			Y:     c.Y,
			Score: HarrisScore(image, c.X, c.Y, HarrisRadius),
		}
	}
	return corners
}

// FindMultiscaleFeatures runs FindFeatures over every pyramid level, tags
// each corner with its originating level, sorts the combined list ascending
// by Harris score, and truncates to at most numFeatures entries.
//
// The ascending sort (rather than descending) matches the reference
// implementation's sort order; see DESIGN.md for why this is kept as-is.
func FindMultiscaleFeatures(pyramid *imaging.Pyramid, threshold, numFeatures int) []Corner {
	var all []Corner
	for level, image := range pyramid.Levels {
		for _, c := range FindFeatures(image, threshold) {
			c.Level = level
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Score < all[j].Score
	})
	if len(all) > numFeatures {
		all = all[:numFeatures]
	}
	return all
}
