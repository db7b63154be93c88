package search

import (
	"sort"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/movegen"
)

// orderCandidates builds the move list a node searches, per spec.md §4.6:
// any hint moves (the TT move, plus moves hoisted to the front by
// multi-cut) are placed first, in order and deduplicated; the remainder is
// sorted descending by blackSum+whiteSum and the whole list truncated to
// move_count[depth] — except hints are never truncated away.
func orderCandidates(candidates []movegen.Candidate, hints []boardstate.Cell, depth int) []boardstate.Cell {
	byCell := make(map[boardstate.Cell]bool, len(candidates))
	for _, c := range candidates {
		byCell[c.Cell] = true
	}

	ordered := make([]boardstate.Cell, 0, len(candidates))
	seen := make(map[boardstate.Cell]bool, len(hints))
	for _, h := range hints {
		if h == boardstate.NoCell || seen[h] || !byCell[h] {
			continue
		}
		ordered = append(ordered, h)
		seen[h] = true
	}

	rest := make([]movegen.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c.Cell] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].BlackSum+rest[i].WhiteSum > rest[j].BlackSum+rest[j].WhiteSum
	})

	for _, c := range rest {
		ordered = append(ordered, c.Cell)
	}

	limit := moveCount(depth)
	if limit < len(seen) {
		limit = len(seen)
	}
	if limit < len(ordered) {
		ordered = ordered[:limit]
	}
	return ordered
}

// candidatesFromCells wraps a bare cell list as Candidates with zero scores,
// for callers (VCF) that already filtered to a forcing-move subset and only
// want orderCandidates' hint-placement/truncation behavior, not its sum-sort.
func candidatesFromCells(cells []boardstate.Cell) []movegen.Candidate {
	out := make([]movegen.Candidate, len(cells))
	for i, c := range cells {
		out[i] = movegen.Candidate{Cell: c}
	}
	return out
}
