package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/gomoku/internal/archive"
	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/search"
)

var (
	mode       = flag.String("mode", "selfplay", "selfplay | bench | replay")
	depth      = flag.Int("depth", search.LimitDepth, "search depth ceiling")
	tableMB    = flag.Int("table-mb", 16, "transposition table size, per table, in MB")
	archiveDir = flag.String("archive", "", "directory for the game archive (empty disables archiving)")
	gameID     = flag.String("game", "", "game ID to replay (mode=replay)")
)

func main() {
	flag.Parse()

	switch *mode {
	case "selfplay":
		runSelfPlay()
	case "bench":
		runBench()
	case "replay":
		runReplay()
	default:
		log.Fatalf("gomokuctl: unknown mode %q", *mode)
	}
}

func newEngine() *search.Engine {
	cfg := search.Config{MainTableMB: *tableMB, VCFTableMB: *tableMB, LimitDepth: *depth}
	return search.New(cfg)
}

// runSelfPlay plays the engine against itself from an empty board until
// Win or Draw, printing each move, and archives the finished game if
// -archive is set.
func runSelfPlay() {
	eng := newEngine()
	side := boardstate.Black
	var moves []archive.MoveRecord

	var status boardstate.Status = boardstate.Undecided
	for status == boardstate.Undecided {
		move := eng.BestMove(side)
		if err := eng.Make(move, side); err != nil {
			log.Fatalf("gomokuctl: %v", err)
		}
		moves = append(moves, archive.MoveRecord{X: move.X, Y: move.Y, Side: side})
		status = eng.Status(move, side)
		fmt.Printf("%s plays %v -> %s\n", side, move, status)
		side = side.Opponent()
	}

	if *archiveDir != "" {
		store, err := archive.Open(*archiveDir)
		if err != nil {
			log.Fatalf("gomokuctl: open archive: %v", err)
		}
		defer store.Close()

		rec := archive.GameRecord{
			ID:       fmt.Sprintf("game-%d", time.Now().UnixNano()),
			Moves:    moves,
			Result:   status,
			Winner:   side.Opponent(),
			PlayedAt: time.Now(),
		}
		if err := store.Save(rec); err != nil {
			log.Fatalf("gomokuctl: save game: %v", err)
		}
		fmt.Printf("archived as %s\n", rec.ID)
	}
}

// runBench times a single best_move call from an empty board at the
// configured depth and reports throughput figures, the CLI equivalent of the
// original Engine::bestMove()'s qInfo() burst.
func runBench() {
	eng := newEngine()
	start := time.Now()
	move := eng.BestMove(boardstate.Black)
	elapsed := time.Since(start)
	stats := eng.Stats()

	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(stats.Nodes) / elapsed.Seconds())
	}
	tableBytes := uint64(*tableMB) * 1024 * 1024 * 2 // main + VCF tables

	fmt.Printf("move=%v nodes=%s vcf_nodes=%s elapsed=%s nodes/sec=%s tables~%s\n",
		move,
		humanize.Comma(int64(stats.Nodes)),
		humanize.Comma(int64(stats.VCFNodes)),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(nps)),
		humanize.Bytes(tableBytes))
}

// runReplay prints an archived game's move list.
func runReplay() {
	if *archiveDir == "" || *gameID == "" {
		log.Fatal("gomokuctl: replay requires both -archive and -game")
	}
	store, err := archive.Open(*archiveDir)
	if err != nil {
		log.Fatalf("gomokuctl: open archive: %v", err)
	}
	defer store.Close()

	rec, err := store.Load(*gameID)
	if err != nil {
		log.Fatalf("gomokuctl: load game %s: %v", *gameID, err)
	}

	fmt.Printf("game %s: result=%s winner=%s played_at=%s\n", rec.ID, rec.Result, rec.Winner, rec.PlayedAt.Format(time.RFC3339))
	for i, m := range rec.Moves {
		fmt.Printf("%3d. %s (%d,%d)\n", i+1, m.Side, m.X, m.Y)
	}
	os.Exit(0)
}
