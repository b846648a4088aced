package rbrief

// AllPairs enumerates every non-overlapping ordered pair of Points in the
// [-Max, Max]^2 grid. The iteration order is outer p.y, then p.x; inner
// q.y, then q.x, skipping pairs where both axes overlap within Window.
//
// This count (240,856) differs from the 205,590 the ORB 2011 paper reports:
// the difference comes from using an inclusive Max bound on a 5x5 sub-window
// rather than an exclusive one, and is intentional — the enumerator here
// reproduces the reference behavior, not the paper's.
func AllPairs() []TestPair {
	var pairs []TestPair

	pair := TestPair{
		P: Point{X: -Max, Y: -Max},
		Q: Point{X: -Max + Window, Y: -Max},
	}

	for pair.Valid() {
		pairs = append(pairs, pair)

		for {
			switch {
			case pair.Q.X < Max:
				pair.Q.X++
			case pair.Q.Y < Max:
				pair.Q.Y++
				pair.Q.X = -Max
			case pair.P.X < Max:
				pair.P.X++
				pair.Q.Y = pair.P.Y
				pair.Q.X = pair.P.X
			default:
				pair.P.Y++
				pair.P.X = -Max
				pair.Q.Y = pair.P.Y
				pair.Q.X = pair.P.X
			}
			if !pair.Overlaps() {
				break
			}
		}
	}

	return pairs
}
