package boardstate

import "testing"

func TestZobristInvolution(t *testing.T) {
	z := NewZobrist()
	initial := z.Hash()

	moves := []moveRecord{
		{cell: Cell{7, 7}, side: Black},
		{cell: Cell{7, 8}, side: White},
		{cell: Cell{8, 8}, side: Black},
	}

	for _, m := range moves {
		z.Toggle(m.cell, m.side)
	}
	for i := len(moves) - 1; i >= 0; i-- {
		z.Toggle(moves[i].cell, moves[i].side)
	}

	if z.Hash() != initial {
		t.Fatalf("Hash() after toggle/untoggle = %d, want %d", z.Hash(), initial)
	}
}

func TestZobristDistinctTables(t *testing.T) {
	z := NewZobrist()
	c := Cell{3, 4}

	z.Toggle(c, Black)
	blackHash := z.Hash()
	z.Toggle(c, Black)

	z.Toggle(c, White)
	whiteHash := z.Hash()

	if blackHash == whiteHash {
		t.Fatalf("black and white hashes for the same cell collided: %d", blackHash)
	}
}

func TestNewZobristIsRandomized(t *testing.T) {
	a := NewZobrist()
	b := NewZobrist()

	a.Toggle(Cell{0, 0}, Black)
	b.Toggle(Cell{0, 0}, Black)

	if a.Hash() == b.Hash() {
		t.Fatalf("two independently constructed Zobrist tables produced the same hash; seeding may not be randomized")
	}
}
