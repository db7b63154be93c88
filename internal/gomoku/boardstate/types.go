// Package boardstate defines the core board representation for free-style
// Gomoku: sides, game status, score constants, the 15x15 board and its move
// stack, and the Zobrist hash that tracks it incrementally.
package boardstate

import "fmt"

// Side identifies a stone color. It is encoded so that negating one side
// yields the other; Empty is only ever used to describe a cell, never a
// side to move.
type Side int8

const (
	Black Side = -1
	Empty Side = 0
	White Side = 1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Status is the outcome of a finished or in-progress game.
type Status int8

const (
	Draw Status = iota - 1
	Undecided
	Win
)

func (s Status) String() string {
	switch s {
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return "Undecided"
	}
}

// Shape scores. These values and exact shape strings are authoritative per
// the specification's strongest variant; search pruning thresholds and move
// ordering both depend on the precise numbers below.
const (
	One      = 20
	Two      = 120
	Three    = 720
	Four     = 720
	OpenFour = 4320
	Five     = 50000

	Max = 10_000_000
	Min = -Max
)

// BoardSize is the fixed edge length of the Gomoku board.
const BoardSize = 15

// Cell is a board coordinate. X is the column, Y is the row, both in
// [0, BoardSize).
type Cell struct {
	X, Y int
}

// NoCell is the sentinel "no cell" value, used where a move slot may be
// empty (e.g. an unset transposition-table move hint).
var NoCell = Cell{X: -1, Y: -1}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// IsLegal reports whether c lies on the board. It is a static check,
// independent of any particular Board instance.
func IsLegal(c Cell) bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}
