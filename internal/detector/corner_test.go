package detector

import "testing"

func TestCircularWindowZero(t *testing.T) {
	got := CircularWindow(0.0)
	want := []Offset{{0, 0}}
	if !offsetsEqual(got, want) {
		t.Fatalf("CircularWindow(0.0) = %v, want %v", got, want)
	}
}

func TestCircularWindow2_5(t *testing.T) {
	got := CircularWindow(2.5)
	want := []Offset{
		{-1, -2}, {0, -2}, {1, -2},
		{-2, -1}, {-1, -1}, {0, -1}, {1, -1}, {2, -1},
		{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
		{-2, 1}, {-1, 1}, {0, 1}, {1, 1}, {2, 1},
		{-1, 2}, {0, 2}, {1, 2},
	}
	if !offsetsEqual(got, want) {
		t.Fatalf("CircularWindow(2.5) = %v, want %v", got, want)
	}
}

func offsetsEqual(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
