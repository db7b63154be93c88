package archive

import (
	"errors"
	"testing"
	"time"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	rec := GameRecord{
		ID: "game-1",
		Moves: []MoveRecord{
			{X: 7, Y: 7, Side: boardstate.Black},
			{X: 7, Y: 8, Side: boardstate.White},
			{X: 8, Y: 7, Side: boardstate.Black},
		},
		Result:   boardstate.Win,
		Winner:   boardstate.Black,
		PlayedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := store.Save(rec); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := store.Load("game-1")
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(got.Moves) != len(rec.Moves) {
		t.Fatalf("Load().Moves has %d entries, want %d", len(got.Moves), len(rec.Moves))
	}
	for i, m := range rec.Moves {
		if got.Moves[i] != m {
			t.Errorf("Load().Moves[%d] = %+v, want %+v", i, got.Moves[i], m)
		}
	}
	if got.Result != rec.Result || got.Winner != rec.Winner {
		t.Errorf("Load() result/winner = %v/%v, want %v/%v", got.Result, got.Winner, rec.Result, rec.Winner)
	}
	if !got.PlayedAt.Equal(rec.PlayedAt) {
		t.Errorf("Load().PlayedAt = %v, want %v", got.PlayedAt, rec.PlayedAt)
	}
}

func TestStoreLoadMissingReturnsErrGameNotFound(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	_, err = store.Load("does-not-exist")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Load() error = %v, want ErrGameNotFound", err)
	}
}

func TestStoreListReturnsSavedIDs(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(GameRecord{ID: id, PlayedAt: time.Now()}); err != nil {
			t.Fatalf("Save(%s) = %v", id, err)
		}
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("List() returned %d ids, want 3: %v", len(ids), ids)
	}
}

func TestStoreSaveOverwritesExistingID(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	_ = store.Save(GameRecord{ID: "game-1", Result: boardstate.Undecided, PlayedAt: time.Now()})
	_ = store.Save(GameRecord{ID: "game-1", Result: boardstate.Draw, PlayedAt: time.Now()})

	got, err := store.Load("game-1")
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.Result != boardstate.Draw {
		t.Errorf("Load().Result = %v, want Draw (second Save should overwrite)", got.Result)
	}
}
