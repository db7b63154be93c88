package movegen

import (
	"testing"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/lineeval"
)

func TestGeneratorEmptyOnFreshBoard(t *testing.T) {
	board := boardstate.NewBoard()
	eval := lineeval.NewEvaluator()
	gen := New(board, eval)

	if !gen.Empty() {
		t.Fatalf("Empty() on fresh board = false, want true")
	}
}

func TestRegisterExpandsNeighborhood(t *testing.T) {
	board := boardstate.NewBoard()
	eval := lineeval.NewEvaluator()
	gen := New(board, eval)

	move := boardstate.Cell{X: 7, Y: 7}
	board.Place(move, boardstate.Black)
	eval.Update(move, boardstate.Black)
	gen.Register(move)

	if gen.Empty() {
		t.Fatalf("Empty() after one move = true, want false")
	}
	if gen.Has(move) {
		t.Fatalf("the played cell itself must not be a candidate")
	}

	near := boardstate.Cell{X: move.X + expandRadius, Y: move.Y}
	if !gen.Has(near) {
		t.Errorf("Has(%v) = false, want true (within expandRadius)", near)
	}

	far := boardstate.Cell{X: move.X + expandRadius + 1, Y: move.Y}
	if gen.Has(far) {
		t.Errorf("Has(%v) = true, want false (outside expandRadius)", far)
	}
}

func TestRegisterUnregisterRoundTrip(t *testing.T) {
	board := boardstate.NewBoard()
	eval := lineeval.NewEvaluator()
	gen := New(board, eval)

	first := boardstate.Cell{X: 7, Y: 7}
	board.Place(first, boardstate.Black)
	eval.Update(first, boardstate.Black)
	gen.Register(first)

	beforeCount := gen.Count()
	beforeCells := gen.Iterate()

	second := boardstate.Cell{X: 7, Y: 8}
	board.Place(second, boardstate.White)
	eval.Update(second, boardstate.White)
	gen.Register(second)

	board.UndoLast()
	eval.Restore()
	gen.Unregister()

	if gen.Count() != beforeCount {
		t.Fatalf("Count() after round trip = %d, want %d", gen.Count(), beforeCount)
	}

	afterSet := make(map[boardstate.Cell]bool, len(beforeCells))
	for _, c := range gen.Iterate() {
		afterSet[c.Cell] = true
	}
	for _, c := range beforeCells {
		if !afterSet[c.Cell] {
			t.Errorf("candidate %v missing after round trip", c.Cell)
		}
	}
}

func TestUnregisterRestoresPlayedCellAsCandidate(t *testing.T) {
	board := boardstate.NewBoard()
	eval := lineeval.NewEvaluator()
	gen := New(board, eval)

	anchor := boardstate.Cell{X: 7, Y: 7}
	board.Place(anchor, boardstate.Black)
	eval.Update(anchor, boardstate.Black)
	gen.Register(anchor)

	move := boardstate.Cell{X: 7, Y: 8}
	board.Place(move, boardstate.White)
	eval.Update(move, boardstate.White)
	gen.Register(move)

	if gen.Has(move) {
		t.Fatalf("Has(%v) = true immediately after playing it, want false", move)
	}

	board.UndoLast()
	eval.Restore()
	gen.Unregister()

	if !gen.Has(move) {
		t.Errorf("Has(%v) = false after undo, want true (still supported by the anchor stone)", move)
	}
}
