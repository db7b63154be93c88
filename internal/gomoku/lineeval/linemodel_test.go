package lineeval

import (
	"testing"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
)

func TestAffectedLinesValidity(t *testing.T) {
	// Corner cell: row/col always valid; (0,0) lies on the full-length '/'
	// diagonal (y-x = 0), which is tracked, while its '\' diagonal has
	// length 1 (x+y = 0, outside 4..24) and must be reported invalid.
	corner := AffectedLines(boardstate.Cell{X: 0, Y: 0})
	if !corner[DirRow].Valid || !corner[DirCol].Valid {
		t.Fatalf("row/col must always be valid: %+v", corner)
	}
	if !corner[DirSlash].Valid {
		t.Errorf("corner '/' diagonal reported invalid: %+v", corner[DirSlash])
	}
	if corner[DirBackslash].Valid {
		t.Errorf("corner '\\' diagonal reported valid: %+v", corner[DirBackslash])
	}

	// Center cell: every direction is on a long, tracked diagonal.
	center := AffectedLines(boardstate.Cell{X: 7, Y: 7})
	for _, al := range center {
		if !al.Valid {
			t.Errorf("center cell direction %d reported invalid: %+v", al.Direction, al)
		}
	}
}

func TestLineModelPlaceRemoveRoundTrip(t *testing.T) {
	lm := NewLineModel()
	cell := boardstate.Cell{X: 7, Y: 7}

	before := snapshotLines(lm)
	lm.Place(cell, boardstate.Black)
	lm.Remove(cell, boardstate.Black)
	after := snapshotLines(lm)

	for i := range before {
		if string(before[i].black) != string(after[i].black) || string(before[i].white) != string(after[i].white) {
			t.Fatalf("line %d not restored: before=%q/%q after=%q/%q", i,
				before[i].black, before[i].white, after[i].black, after[i].white)
		}
	}
}

type lineSnap struct {
	black []byte
	white []byte
}

func snapshotLines(lm *LineModel) [numLines]lineSnap {
	var out [numLines]lineSnap
	for i := 0; i < numLines; i++ {
		out[i] = lineSnap{
			black: append([]byte(nil), lm.black[i]...),
			white: append([]byte(nil), lm.white[i]...),
		}
	}
	return out
}

func TestLineModelPlacePOVsAgree(t *testing.T) {
	lm := NewLineModel()
	cell := boardstate.Cell{X: 7, Y: 7}
	lm.Place(cell, boardstate.Black)

	al := AffectedLines(cell)[DirRow]
	if lm.black[al.Index][al.Offset] != '1' {
		t.Errorf("black POV at placed cell = %q, want '1'", lm.black[al.Index][al.Offset])
	}
	if lm.white[al.Index][al.Offset] != '2' {
		t.Errorf("white POV at placed cell = %q, want '2'", lm.white[al.Index][al.Offset])
	}
}

func TestWindowInvalidDirection(t *testing.T) {
	lm := NewLineModel()
	// (0,0): '/' diagonal has |y-x| = 0 actually valid; use a truly
	// out-of-range corner for the backslash diagonal instead.
	cell := boardstate.Cell{X: 0, Y: 0}
	if _, _, ok := lm.Window(cell, DirBackslash); ok {
		t.Errorf("Window(%v, backslash) ok = true, want false", cell)
	}
}

func TestWindowReflectsNeighboringStones(t *testing.T) {
	lm := NewLineModel()
	lm.Place(boardstate.Cell{X: 6, Y: 7}, boardstate.Black)
	lm.Place(boardstate.Cell{X: 8, Y: 7}, boardstate.Black)

	black, white, ok := lm.Window(boardstate.Cell{X: 7, Y: 7}, DirRow)
	if !ok {
		t.Fatalf("Window ok = false, want true")
	}
	// From black's POV, both real neighbors plus the hypothetical center
	// stone read '1'; none of them should ever show the opponent marker.
	for _, b := range black {
		if b == '2' {
			t.Fatalf("black window unexpectedly contains opponent marker: %q", black)
		}
	}
	for _, w := range white {
		if w != '2' && w != '0' && w != '1' {
			t.Fatalf("white window contains unexpected byte: %q", white)
		}
	}
}
