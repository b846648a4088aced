// Package rbrief implements the rotated BRIEF descriptor: its bank of
// pre-rotated test sets, integral-image sampling, and the greedy training
// procedure used to learn a discriminative test set from a training corpus.
package rbrief

import (
	"encoding/json"
	"math"
)

// Geometry constants shared by sampling, the pair enumerator, and training.
// A descriptor samples points within a disc of radius HWIDTH*sqrt(2) from
// the feature center, and each sample point averages a WINDOW x WINDOW box,
// so the integral-image patch needs at least RADIUS pixels around the
// feature in every direction.
const (
	HWidth  = 15
	HWindow = 2
	Window  = HWindow*2 + 1 // 5
	Max     = HWidth - HWindow // 13
)

// Radius is the integral-image patch half-extent required for sampling.
var Radius = int(HWidth*math.Sqrt2) + HWindow

// Point is a signed integer 2D offset used by rBRIEF test pairs, bounded to
// |x|, |y| <= Max.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid reports whether both coordinates are within [-Max, Max].
func (p Point) Valid() bool {
	return p.X >= -Max && p.X <= Max && p.Y >= -Max && p.Y <= Max
}

// rotate returns p rotated by the angle whose cosine/sine are given,
// truncating to the nearest integer toward zero as the reference
// implementation does.
func (p Point) rotate(cos, sin float64) Point {
	return Point{
		X: int(cos*float64(p.X) - sin*float64(p.Y)),
		Y: int(sin*float64(p.X) + cos*float64(p.Y)),
	}
}

// TestPair is an ordered pair of sample points compared by a single rBRIEF
// bit test. A pair whose endpoints are within Window of each other on both
// axes overlaps (see Overlaps); Valid checks only that both endpoints are
// in bounds.
type TestPair struct {
	P, Q Point
}

// MarshalJSON encodes t as a 2-element array [P, Q], matching the reference
// encoder's tuple-struct layout rather than a {"P":...,"Q":...} object.
func (t TestPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Point{t.P, t.Q})
}

// UnmarshalJSON decodes t from a 2-element array [P, Q].
func (t *TestPair) UnmarshalJSON(data []byte) error {
	var points [2]Point
	if err := json.Unmarshal(data, &points); err != nil {
		return err
	}
	t.P, t.Q = points[0], points[1]
	return nil
}

// Overlaps reports whether P and Q are too close together on both axes to
// form a valid (non-overlapping) test.
func (t TestPair) Overlaps() bool {
	return abs(t.P.X-t.Q.X) < Window && abs(t.P.Y-t.Q.Y) < Window
}

// Valid reports whether both endpoints are within bounds.
func (t TestPair) Valid() bool {
	return t.P.Valid() && t.Q.Valid()
}

// Rotate returns t with both endpoints rotated by angle radians.
func (t TestPair) Rotate(angle float64) TestPair {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return TestPair{P: t.P.rotate(cos, sin), Q: t.Q.rotate(cos, sin)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
