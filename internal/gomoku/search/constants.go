package search

import (
	"math"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
)

// Search parameters, authoritative per the strongest source variant.
const (
	// LimitDepth is the default iterative-deepening ceiling for best_move.
	LimitDepth = 12

	// Multi-cut parameters: at Cut nodes deep enough and wide enough, try
	// MCM candidates at reduced depth and cut early if MCC of them beat beta.
	MCR = 3
	MCM = 10
	MCC = 3

	// VCFDepth bounds the Victory-by-Continuous-Four quiescence recursion.
	VCFDepth = 225

	// mateWindow is the distance from Max/Min within which a score is
	// considered a (possibly adjusted) forced win/loss rather than a
	// positional evaluation, for transposition-table mate-distance
	// compensation.
	mateWindow = 225
)

const (
	Max = boardstate.Max
	Min = boardstate.Min
	Five = boardstate.Five
	OpenFour = boardstate.OpenFour
)

// nullMoveReduction returns R, the null-move search reduction: spec.md's
// open question on R=2-vs-3 is resolved by the strongest variant using both,
// chosen dynamically by remaining depth.
func nullMoveReduction(depth int) int {
	if depth >= 6 {
		return 3
	}
	return 2
}

// moveCount implements move_count[d] = (floor(d^1.33) + 3) / 2, the
// candidate-list truncation used for move ordering, clamped to a small
// upper bound.
func moveCount(depth int) int {
	if depth < 0 {
		depth = 0
	}
	n := (int(math.Floor(math.Pow(float64(depth), 1.33))) + 3) / 2
	if n > 225 {
		n = 225
	}
	if n < 1 {
		n = 1
	}
	return n
}
