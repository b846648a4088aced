package rbrief

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// TestSetSize is the fixed number of test pairs in a TestSet, matching the
// 128-bit descriptor width.
const TestSetSize = 128

// TestSet is the ordered list of test pairs sampled by a single rBRIEF
// descriptor bin. Order matters: bit i of a Descriptor corresponds to
// Pairs[i].
type TestSet struct {
	Pairs [TestSetSize]TestPair
}

// NewRandomTestSet draws a TestSet uniformly at random from the valid point
// range. Each pair's four coordinates are sampled directly, and a pair for
// which TestPair.Overlaps() is true is redrawn, so every pair of the result
// is non-overlapping, like the pairs Trainer.MakeTestSet selects.
func NewRandomTestSet(rng *rand.Rand) TestSet {
	var set TestSet
	for i := range set.Pairs {
		for {
			set.Pairs[i] = TestPair{
				P: Point{X: randCoord(rng), Y: randCoord(rng)},
				Q: Point{X: randCoord(rng), Y: randCoord(rng)},
			}
			if !set.Pairs[i].Overlaps() {
				break
			}
		}
	}
	return set
}

func randCoord(rng *rand.Rand) int {
	return rng.Intn(2*Max+1) - Max
}

// RotateTestSet returns a copy of set with every pair rotated by angle
// radians.
func RotateTestSet(set TestSet, angle float64) TestSet {
	var out TestSet
	for i, pair := range set.Pairs {
		out.Pairs[i] = pair.Rotate(angle)
	}
	return out
}

// Save writes set to filename as JSON: an array of TestSetSize elements,
// each a 2-element [P, Q] array of {"x","y"} points (see TestPair's
// MarshalJSON), matching the reference encoder's tuple-struct layout.
func (set TestSet) Save(filename string) error {
	data, err := json.MarshalIndent(set.Pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("rbrief: marshal test set: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("rbrief: write test set %s: %w", filename, err)
	}
	return nil
}

// LoadTestSet reads a TestSet previously written by Save, validating that it
// has exactly TestSetSize pairs and that every point is in bounds.
func LoadTestSet(filename string) (TestSet, error) {
	var set TestSet

	data, err := os.ReadFile(filename)
	if err != nil {
		return set, fmt.Errorf("rbrief: read test set %s: %w", filename, err)
	}

	var pairs []TestPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return set, fmt.Errorf("rbrief: decode test set %s: invalid format: %w", filename, err)
	}
	if len(pairs) != TestSetSize {
		return set, fmt.Errorf("rbrief: test set %s: invalid format: want %d pairs, got %d", filename, TestSetSize, len(pairs))
	}
	for i, pair := range pairs {
		if !pair.Valid() {
			return set, fmt.Errorf("rbrief: test set %s: invalid format: pair %d out of bounds", filename, i)
		}
		set.Pairs[i] = pair
	}
	return set, nil
}
