// Package movegen maintains the set of candidate moves worth searching: any
// empty cell within a fixed radius of some stone already on the board,
// together with cached per-direction scores used to order those candidates
// without re-running the pattern matcher at every search node.
package movegen

import (
	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/lineeval"
)

// expandRadius is the Chebyshev distance within which an empty cell becomes
// a candidate move after a stone is placed.
const expandRadius = 3

// rescoreRadius is the (larger) radius within which existing candidates'
// per-direction scores are refreshed after a stone is placed — a stone can
// extend a line's shape at a cell up to 4 away from it along that line.
const rescoreRadius = 4

// directions, matching lineeval's row/column/'/'/'\' ordering.
const numDirections = 4

// partial holds one candidate cell's per-direction score contribution for
// each side, as reported by Evaluator.ScoreAt.
type partial struct {
	black [numDirections]int
	white [numDirections]int
}

func (p partial) sums() (black, white int) {
	for d := 0; d < numDirections; d++ {
		black += p.black[d]
		white += p.white[d]
	}
	return black, white
}

// change records a candidate's partial score before it was overwritten,
// for Unregister to restore.
type change struct {
	cell boardstate.Cell
	prev partial
}

// snapshot captures everything Unregister needs to reverse one Register.
type snapshot struct {
	move      boardstate.Cell
	added     []boardstate.Cell
	changed   []change
	movedHad  bool
	movedPrev partial
}

// Generator tracks, incrementally, every empty cell within expandRadius of
// some stone, plus each candidate's cached per-direction scores. Callers
// must call Register immediately after placing a stone (board.Place and
// evaluator.Update must already have run), and Unregister immediately after
// undoing one (in LIFO order).
type Generator struct {
	board      *boardstate.Board
	evaluator  *lineeval.Evaluator
	candidates map[boardstate.Cell]*partial
	history    []snapshot
}

// New returns a Generator bound to board and evaluator. Both must already
// reflect whatever position the Generator starts tracking (normally an
// empty board).
func New(board *boardstate.Board, evaluator *lineeval.Evaluator) *Generator {
	return &Generator{
		board:      board,
		evaluator:  evaluator,
		candidates: make(map[boardstate.Cell]*partial),
	}
}

func within(center boardstate.Cell, radius int, fn func(boardstate.Cell)) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := boardstate.Cell{X: center.X + dx, Y: center.Y + dy}
			if boardstate.IsLegal(n) {
				fn(n)
			}
		}
	}
}

func containsCell(cells []boardstate.Cell, c boardstate.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

// Register records that move has just been occupied (board.Place and
// evaluator.Update must already have run). It expands the candidate set by
// move's expandRadius neighborhood, then refreshes the per-direction scores
// of every candidate within rescoreRadius, and finally drops move itself
// from the candidate set.
func (g *Generator) Register(move boardstate.Cell) {
	snap := snapshot{move: move}

	within(move, expandRadius, func(n boardstate.Cell) {
		if !g.board.IsEmpty(n) {
			return
		}
		if _, exists := g.candidates[n]; exists {
			return
		}
		g.candidates[n] = &partial{}
		snap.added = append(snap.added, n)
	})

	within(move, rescoreRadius, func(n boardstate.Cell) {
		p, exists := g.candidates[n]
		if !exists {
			return
		}
		if !containsCell(snap.added, n) {
			snap.changed = append(snap.changed, change{cell: n, prev: *p})
		}
		var next partial
		for d := 0; d < numDirections; d++ {
			b, w := g.evaluator.ScoreAt(n, d)
			next.black[d], next.white[d] = b, w
		}
		*p = next
	})

	if p, exists := g.candidates[move]; exists {
		snap.movedHad = true
		snap.movedPrev = *p
		delete(g.candidates, move)
	}

	g.history = append(g.history, snap)
}

// Unregister reverses the most recent Register. It must be called
// immediately after the corresponding board.UndoLast/evaluator.Restore.
func (g *Generator) Unregister() {
	n := len(g.history) - 1
	snap := g.history[n]
	g.history = g.history[:n]

	if snap.movedHad {
		prev := snap.movedPrev
		g.candidates[snap.move] = &prev
	}
	for _, ch := range snap.changed {
		prev := ch.prev
		g.candidates[ch.cell] = &prev
	}
	for _, c := range snap.added {
		delete(g.candidates, c)
	}
}

// Empty reports whether there are no candidate moves (true for an empty
// board and for a full one).
func (g *Generator) Empty() bool {
	return len(g.candidates) == 0
}

// Count returns the number of current candidate cells.
func (g *Generator) Count() int {
	return len(g.candidates)
}

// Has reports whether cell is currently a candidate move.
func (g *Generator) Has(cell boardstate.Cell) bool {
	_, ok := g.candidates[cell]
	return ok
}

// Candidate is one candidate move with its summed and per-direction scores.
// BlackDir/WhiteDir are indexed the same way lineeval's direction constants
// are (row, column, '/', '\'), so Search can tell which direction produced a
// winning or threatening score.
type Candidate struct {
	Cell     boardstate.Cell
	BlackSum int
	WhiteSum int
	BlackDir [numDirections]int
	WhiteDir [numDirections]int
}

// Iterate returns every current candidate with its scores. The order is
// unspecified; Search sorts the result for move ordering.
func (g *Generator) Iterate() []Candidate {
	out := make([]Candidate, 0, len(g.candidates))
	for cell, p := range g.candidates {
		black, white := p.sums()
		out = append(out, Candidate{
			Cell:     cell,
			BlackSum: black,
			WhiteSum: white,
			BlackDir: p.black,
			WhiteDir: p.white,
		})
	}
	return out
}
