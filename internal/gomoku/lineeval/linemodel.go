// Package lineeval implements incremental line-shape evaluation: the
// per-direction line strings (LineModel) and the shape-score accounting
// built on top of them (Evaluator).
package lineeval

import "github.com/hailam/gomoku/internal/gomoku/boardstate"

const (
	boardSize = boardstate.BoardSize
	numLines  = 72
)

const (
	// Direction indices, in the order spec.md uses throughout: row,
	// column, '/' diagonal, '\' diagonal.
	DirRow = iota
	DirCol
	DirSlash
	DirBackslash
)

// AffectedLine names one of the up to four lines a given cell belongs to,
// and whether that line is tracked at all (short diagonals near the
// corners are never tracked — they can never hold five in a row).
type AffectedLine struct {
	Direction int
	Index     int
	Offset    int // this cell's position within that line's string
	Valid     bool
}

// AffectedLines returns, for cell, the (direction, line index, in-line
// offset, validity) of each of the four lines through it. Index formulas
// and the `|y-x| <= 10` / `4 <= x+y <= 24` validity windows are taken
// directly from the original engine's move()/evaluatePoint().
func AffectedLines(cell boardstate.Cell) [4]AffectedLine {
	x, y := cell.X, cell.Y

	diag := y - x
	anti := x + y

	return [4]AffectedLine{
		{Direction: DirRow, Index: y, Offset: x, Valid: true},
		{Direction: DirCol, Index: x + 15, Offset: y, Valid: true},
		{Direction: DirSlash, Index: diag + 40, Offset: min(x, y), Valid: abs(diag) <= 10},
		{Direction: DirBackslash, Index: anti + 47, Offset: min(y, boardSize-1-x), Valid: anti >= 4 && anti <= 24},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// lineLength returns the length of tracked line index i, for the
// '/' and '\' diagonal ranges (the row/column ranges are always 15).
func lineLength(i int) int {
	switch {
	case i < 15, i >= 15 && i < 30:
		return boardSize
	case i >= 30 && i <= 50:
		return boardSize - abs(i-40)
	default: // 51..71
		return boardSize - abs(i-61)
	}
}

// LineModel holds the 72 per-direction line strings, from both sides'
// points of view. Within a line string, '0' is empty, '1' is that POV's
// own stone, '2' is the opponent's stone.
type LineModel struct {
	black [numLines][]byte
	white [numLines][]byte
}

// NewLineModel returns a LineModel with every line initialized to all-'0'
// of its tracked length.
func NewLineModel() *LineModel {
	lm := &LineModel{}
	for i := 0; i < numLines; i++ {
		n := lineLength(i)
		lm.black[i] = make([]byte, n)
		lm.white[i] = make([]byte, n)
		for j := 0; j < n; j++ {
			lm.black[i][j] = '0'
			lm.white[i][j] = '0'
		}
	}
	return lm
}

// Place marks cell as occupied by side in both POV line sets, maintaining
// the invariant that every occupied cell reads '1' in its own side's lines
// and '2' in the opponent's.
func (lm *LineModel) Place(cell boardstate.Cell, side boardstate.Side) {
	lm.set(cell, side, true)
}

// Remove reverses a prior Place for the same (cell, side), restoring '0' in
// both POV line sets.
func (lm *LineModel) Remove(cell boardstate.Cell, side boardstate.Side) {
	lm.set(cell, side, false)
}

func (lm *LineModel) set(cell boardstate.Cell, side boardstate.Side, occupied bool) {
	own, opp := lm.black, lm.white
	if side == boardstate.White {
		own, opp = lm.white, lm.black
	}

	ownChar, oppChar := byte('0'), byte('0')
	if occupied {
		ownChar, oppChar = '1', '2'
	}

	for _, al := range AffectedLines(cell) {
		if !al.Valid {
			continue
		}
		own[al.Index][al.Offset] = ownChar
		opp[al.Index][al.Offset] = oppChar
	}
}

// Line returns the current string for (side, index), read-only.
func (lm *LineModel) Line(side boardstate.Side, index int) []byte {
	if side == boardstate.Black {
		return lm.black[index]
	}
	return lm.white[index]
}

// Window computes the 9-char (or shorter, near a line's edge) windows
// centered on cell's position within the line for direction, as if a stone
// were additionally placed there — independently for both sides' points of
// view. It returns ok=false if cell does not lie on a tracked line for
// direction (a short diagonal near a corner).
//
// This mirrors Evaluator::evaluatePoint / Engine::lineScore in the original
// implementation exactly, including the asymmetric clamping of the window
// when the cell is near a line's end.
func (lm *LineModel) Window(cell boardstate.Cell, direction int) (black, white []byte, ok bool) {
	x, y := cell.X, cell.Y

	var line, offset int
	switch direction {
	case DirRow:
		line, offset = y, x-4
	case DirCol:
		line, offset = x+15, y-4
	case DirSlash:
		if abs(y-x) > 10 {
			return nil, nil, false
		}
		line, offset = y-x+40, min(x, y)-4
	case DirBackslash:
		if x+y < 4 || x+y > 24 {
			return nil, nil, false
		}
		line, offset = x+y+47, min(y, boardSize-1-x)-4
	}

	blackLine := append([]byte(nil), lm.black[line]...)
	whiteLine := append([]byte(nil), lm.white[line]...)

	center := offset + 4
	blackLine[center] = '1'
	whiteLine[center] = '1'

	count := 9
	if offset < 0 {
		count = offset + 9
	}
	start := max(0, offset)
	if start+count > len(blackLine) {
		count = len(blackLine) - start
	}

	return blackLine[start : start+count], whiteLine[start : start+count], true
}
