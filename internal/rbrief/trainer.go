package rbrief

import (
	"math"
	"sort"

	"orbfeatures/internal/imaging"
)

// Trainer accumulates, for every pair enumerated by AllPairs, the sequence
// of test outcomes observed across a training corpus. MakeTestSet distills
// that history into a TestSetSize-pair TestSet of mutually uncorrelated,
// highly discriminative tests.
type Trainer struct {
	pairs   []TestPair
	history []BitVec
}

// NewTrainer builds a Trainer covering every pair AllPairs enumerates.
func NewTrainer() *Trainer {
	pairs := AllPairs()
	return &Trainer{
		pairs:   pairs,
		history: make([]BitVec, len(pairs)),
	}
}

// Accumulate evaluates every candidate pair, rotated to the bin nearest
// angle, against the feature at (x, y) in image, and records the outcome.
// It is a no-op if the feature is too close to the border for the sampling
// patch to fit.
func (tr *Trainer) Accumulate(image *imaging.Image, x, y int, angle float64) {
	if x < Radius || y < Radius || x+Radius >= image.Width || y+Radius >= image.Height {
		return
	}

	size := 2*Radius + 1
	patch := imaging.NewImage(size, size)
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			patch.Set(px, py, image.At(x-Radius+px, y-Radius+py))
		}
	}
	ii := imaging.NewIntegralImage(patch)
	center := Point{X: Radius, Y: Radius}

	binAngle := float64(binIndex(angle)) * BinStep
	cos, sin := math.Cos(binAngle), math.Sin(binAngle)

	for i, pair := range tr.pairs {
		rotated := TestPair{P: pair.P.rotate(cos, sin), Q: pair.Q.rotate(cos, sin)}
		tr.history[i].Push(test(ii, center, rotated))
	}
}

// maxThresholdAttempts bounds the inner threshold-search loop so a
// pathological corpus (e.g. in a unit test) cannot spin forever; a real
// training corpus converges within a handful of attempts per outer pass.
const maxThresholdAttempts = 10000

// rankedCandidate is a pair index ordered by distance of its mean response
// from 0.5.
type rankedCandidate struct {
	idx  int
	dist float64
}

// MakeTestSet distills the accumulated history into a TestSet of
// TestSetSize pairs. Candidates are ranked by how close their mean is to
// 0.5 (most discriminative first; maximum variance). A candidate is
// admitted into the result set if its average correlation with every
// pair already in the set is below a threshold tau. tau starts at 0.4 and
// is walked up or down in search of the step that lands the result at
// exactly TestSetSize members; five outer passes, each halving the step
// and reversing direction, converge on the right tau in practice.
func (tr *Trainer) MakeTestSet() TestSet {
	ranked := make([]rankedCandidate, len(tr.pairs))
	for i := range tr.pairs {
		ranked[i] = rankedCandidate{idx: i, dist: math.Abs(tr.history[i].Mean() - 0.5)}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	tau := 0.4
	delta := 0.01
	up := true
	var selected []int

	for iter := 0; iter < 5; iter++ {
		tau += delta
		for attempt := 0; attempt < maxThresholdAttempts; attempt++ {
			selected = tr.collect(ranked, tau)
			if (up && len(selected) == TestSetSize) || (!up && len(selected) < TestSetSize) {
				break
			}
			tau += delta
		}
		delta = -delta / 2
		up = !up
	}

	var set TestSet
	for i := 0; i < TestSetSize && i < len(selected); i++ {
		set.Pairs[i] = tr.pairs[selected[i]]
	}
	return set
}

// collect greedily builds a result set from ranked candidates (best first),
// admitting a candidate only if its mean correlation with every pair
// already collected is below tau, stopping once TestSetSize are collected.
func (tr *Trainer) collect(ranked []rankedCandidate, tau float64) []int {
	selected := []int{ranked[0].idx}
	for _, c := range ranked[1:] {
		if len(selected) >= TestSetSize {
			break
		}
		sum := 0.0
		for _, s := range selected {
			sum += tr.history[c.idx].Correlation(&tr.history[s])
		}
		if sum/float64(len(selected)) < tau {
			selected = append(selected, c.idx)
		}
	}
	return selected
}
