package boardstate

// moveRecord is a single entry on the undo stack: the cell played and who
// played it.
type moveRecord struct {
	cell Cell
	side Side
}

// Board is the 15x15 grid of stones plus the history needed to undo moves.
// It is the lowest-level piece of engine state; LineModel, Evaluator,
// MoveGenerator and Zobrist are all kept in lockstep with it by the owning
// Engine, never by Board itself.
type Board struct {
	cells   [BoardSize][BoardSize]Side
	history []moveRecord
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the stone at c, or Empty if c is unoccupied. The caller must
// ensure c is legal.
func (b *Board) At(c Cell) Side {
	return b.cells[c.X][c.Y]
}

// IsEmpty reports whether c currently holds no stone.
func (b *Board) IsEmpty(c Cell) bool {
	return b.cells[c.X][c.Y] == Empty
}

// Place records that side has played at c. c must be empty and legal; the
// caller (Engine.Make) is responsible for checking both before calling.
func (b *Board) Place(c Cell, side Side) {
	b.cells[c.X][c.Y] = side
	b.history = append(b.history, moveRecord{cell: c, side: side})
}

// UndoLast removes the most recently placed stone and returns its cell and
// side. It panics if the history is empty; callers must check Len first.
func (b *Board) UndoLast() (Cell, Side) {
	n := len(b.history) - 1
	rec := b.history[n]
	b.history = b.history[:n]
	b.cells[rec.cell.X][rec.cell.Y] = Empty
	return rec.cell, rec.side
}

// Len returns the number of stones currently on the board.
func (b *Board) Len() int {
	return len(b.history)
}

// LastMove returns the most recently played cell, or NoCell if the board is
// empty.
func (b *Board) LastMove() Cell {
	if len(b.history) == 0 {
		return NoCell
	}
	return b.history[len(b.history)-1].cell
}

// Full reports whether every cell on the board is occupied.
func (b *Board) Full() bool {
	return len(b.history) == BoardSize*BoardSize
}
