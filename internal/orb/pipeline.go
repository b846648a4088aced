package orb

import (
	"math/rand"

	"orbfeatures/internal/detector"
	"orbfeatures/internal/imaging"
	"orbfeatures/internal/lsh"
	"orbfeatures/internal/rbrief"
)

// DescribedCorner is a fully processed feature: a pyramid-level position
// with its Harris score, measured orientation, and rBRIEF descriptor.
// Descriptor is nil if the feature was too close to its level's border for
// the descriptor patch to fit.
type DescribedCorner struct {
	X, Y       int
	Level      int
	Score      float64
	Angle      float64
	Descriptor *rbrief.Descriptor
}

// FindMultiscaleFeatures runs the full detection pipeline on image: builds
// a pyramid, finds and Harris-scores FAST corners at every level, measures
// each corner's orientation, and computes its rBRIEF descriptor against
// config.RBriefBank.
func FindMultiscaleFeatures(image *imaging.Image, config Config) []DescribedCorner {
	pyramid := imaging.BuildPyramid(image, config.NumPyramidLevels)
	corners := detector.FindMultiscaleFeatures(pyramid, config.FastThreshold, config.NumFeatures)

	described := make([]DescribedCorner, len(corners))
	for i, c := range corners {
		level := pyramid.Levels[c.Level]
		angle := detector.Orientation(level, c.X, c.Y, detector.HarrisRadius)
		described[i] = DescribedCorner{
			X:          c.X,
			Y:          c.Y,
			Level:      c.Level,
			Score:      c.Score,
			Angle:      angle,
			Descriptor: rbrief.Describe(config.RBriefBank, level, c.X, c.Y, angle),
		}
	}
	return described
}

// FindMatches builds an LSH index over b and, for every described feature
// in a that has a descriptor, looks up its nearest neighbor in b within
// config.LSHMaxDistance. The returned slice is parallel to a: an entry is
// nil wherever a had no descriptor or no acceptable match was found.
func FindMatches(a, b []DescribedCorner, config Config, rng *rand.Rand) []*DescribedCorner {
	index := lsh.New[*DescribedCorner](config.LSHTables, config.LSHBits, rng)
	for i := range b {
		if b[i].Descriptor != nil {
			index.Insert(*b[i].Descriptor, &b[i])
		}
	}

	matches := make([]*DescribedCorner, len(a))
	for i := range a {
		if a[i].Descriptor == nil {
			continue
		}
		if _, match, ok := index.Get(*a[i].Descriptor, config.LSHMaxDistance); ok {
			matches[i] = match
		}
	}
	return matches
}

// AddImageToTrainer feeds every corner detected in image into trainer,
// using the corner's own orientation estimate, so MakeTestSet can later
// distill a discriminative test set from the accumulated statistics.
func AddImageToTrainer(trainer *rbrief.Trainer, image *imaging.Image, config Config) {
	pyramid := imaging.BuildPyramid(image, config.NumPyramidLevels)
	corners := detector.FindMultiscaleFeatures(pyramid, config.FastThreshold, config.NumFeatures)
	for _, c := range corners {
		level := pyramid.Levels[c.Level]
		angle := detector.Orientation(level, c.X, c.Y, detector.HarrisRadius)
		trainer.Accumulate(level, c.X, c.Y, angle)
	}
}
