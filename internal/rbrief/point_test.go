package rbrief

import (
	"math"
	"testing"
)

func TestTestPairRotateQuarterTurn(t *testing.T) {
	p := Point{X: 5, Y: 0}
	rotated := p.rotate(math.Cos(math.Pi/2), math.Sin(math.Pi/2))
	if d := abs(rotated.X - 0); d > 1 {
		t.Fatalf("rotated.X = %d, want near 0", rotated.X)
	}
	if d := abs(rotated.Y - 5); d > 1 {
		t.Fatalf("rotated.Y = %d, want near 5", rotated.Y)
	}
}

func TestTestPairOverlapsAdjacent(t *testing.T) {
	pair := TestPair{P: Point{X: 0, Y: 0}, Q: Point{X: 1, Y: 1}}
	if !pair.Overlaps() {
		t.Fatal("expected overlap for adjacent points")
	}
}

func TestTestPairOverlapsFarApart(t *testing.T) {
	pair := TestPair{P: Point{X: -Max, Y: -Max}, Q: Point{X: Max, Y: Max}}
	if pair.Overlaps() {
		t.Fatal("expected no overlap for far apart points")
	}
}

func TestPointValidBounds(t *testing.T) {
	if !(Point{X: Max, Y: Max}).Valid() {
		t.Fatal("expected (Max, Max) to be valid")
	}
	if (Point{X: Max + 1, Y: 0}).Valid() {
		t.Fatal("expected (Max+1, 0) to be invalid")
	}
	if (Point{X: 0, Y: -Max - 1}).Valid() {
		t.Fatal("expected (0, -Max-1) to be invalid")
	}
}
