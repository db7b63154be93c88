// Package search implements the transposition table and PVS/VCF search that
// select moves, plus the Engine facade that wires Board, Zobrist, Evaluator
// and MoveGenerator together and exposes the narrow external interface
// described in spec.md §6.
package search

import (
	"fmt"
	"log"

	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/lineeval"
	"github.com/hailam/gomoku/internal/gomoku/movegen"
)

// Config bounds the engine's resource usage: the size of each
// transposition table and the search depth ceiling.
type Config struct {
	MainTableMB int // transposition table size, in megabytes
	VCFTableMB  int // VCF-scoped transposition table size, in megabytes
	LimitDepth  int // iterative search ceiling; 0 selects LimitDepth
}

// DefaultConfig matches spec.md §5's suggested defaults: ~16 MiB main
// table, ~16 MiB VCF table.
func DefaultConfig() Config {
	return Config{MainTableMB: 16, VCFTableMB: 16, LimitDepth: LimitDepth}
}

// Stats reports search effort for the most recent BestMove call.
type Stats struct {
	Nodes    uint64
	VCFNodes uint64
}

// Engine owns one game's board, line model, candidate set and
// transposition tables, and mutates them all in lockstep on every Make and
// Undo — spec.md §3's "entity lifecycles" and §5's single-threaded
// concurrency model.
type Engine struct {
	board     *boardstate.Board
	zobrist   *boardstate.Zobrist
	evaluator *lineeval.Evaluator
	generator *movegen.Generator

	mainTT *TranspositionTable
	vcfTT  *TranspositionTable

	cfg   Config
	stats Stats
}

// New returns an Engine with an empty board. Every engine's Zobrist tables
// are independently randomized, so hashes are not comparable across
// instances. Candidates are iterated in map order, so moves with equal
// ordering scores are not searched in a fixed order.
func New(cfg Config) *Engine {
	if cfg.LimitDepth <= 0 {
		cfg.LimitDepth = LimitDepth
	}
	board := boardstate.NewBoard()
	evaluator := lineeval.NewEvaluator()

	e := &Engine{
		board:     board,
		zobrist:   boardstate.NewZobrist(),
		evaluator: evaluator,
		generator: movegen.New(board, evaluator),
		mainTT:    NewTranspositionTable(cfg.MainTableMB),
		vcfTT:     NewTranspositionTable(cfg.VCFTableMB),
		cfg:       cfg,
	}
	log.Printf("[search] engine ready (main=%dMB vcf=%dMB limitDepth=%d)", cfg.MainTableMB, cfg.VCFTableMB, cfg.LimitDepth)
	return e
}

// IsLegal reports whether cell lies on the board.
func (e *Engine) IsLegal(cell boardstate.Cell) bool {
	return boardstate.IsLegal(cell)
}

// Make plays side at cell, updating Board, Zobrist, Evaluator and
// MoveGenerator atomically. cell must be legal and empty.
func (e *Engine) Make(cell boardstate.Cell, side boardstate.Side) error {
	if !boardstate.IsLegal(cell) {
		return fmt.Errorf("gomoku: illegal move %v: out of bounds", cell)
	}
	if !e.board.IsEmpty(cell) {
		return fmt.Errorf("gomoku: illegal move %v: cell already occupied", cell)
	}
	e.make(cell, side)
	return nil
}

// Undo reverses the most recent steps moves. steps must not exceed the
// number of moves played so far.
func (e *Engine) Undo(steps int) error {
	if steps < 0 || steps > e.board.Len() {
		return fmt.Errorf("gomoku: cannot undo %d moves: only %d played", steps, e.board.Len())
	}
	for i := 0; i < steps; i++ {
		e.unmake()
	}
	return nil
}

// make is the internal, unchecked move application shared by Make and the
// search's own make-move recursion.
func (e *Engine) make(cell boardstate.Cell, side boardstate.Side) {
	e.board.Place(cell, side)
	e.zobrist.Toggle(cell, side)
	e.evaluator.Update(cell, side)
	e.generator.Register(cell)
}

// unmake is the internal, unchecked inverse of make.
func (e *Engine) unmake() {
	cell, side := e.board.UndoLast()
	e.zobrist.Toggle(cell, side)
	e.evaluator.Restore()
	e.generator.Unregister()
}

// CellAt returns the stone at cell, or boardstate.Empty.
func (e *Engine) CellAt(cell boardstate.Cell) boardstate.Side {
	return e.board.At(cell)
}

// LastMove returns the most recently played cell, or boardstate.NoCell.
func (e *Engine) LastMove() boardstate.Cell {
	return e.board.LastMove()
}

// Status reports the game outcome after side played move: Win if that move
// completed a run of five or more, else Draw if the board is now full,
// else Undecided.
func (e *Engine) Status(move boardstate.Cell, side boardstate.Side) boardstate.Status {
	if e.hasFiveThrough(move, side) {
		return boardstate.Win
	}
	if e.board.Full() {
		return boardstate.Draw
	}
	return boardstate.Undecided
}

func (e *Engine) hasFiveThrough(move boardstate.Cell, side boardstate.Side) bool {
	dirs := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		count := 1
		for step := 1; ; step++ {
			c := boardstate.Cell{X: move.X + d[0]*step, Y: move.Y + d[1]*step}
			if !boardstate.IsLegal(c) || e.board.At(c) != side {
				break
			}
			count++
		}
		for step := 1; ; step++ {
			c := boardstate.Cell{X: move.X - d[0]*step, Y: move.Y - d[1]*step}
			if !boardstate.IsLegal(c) || e.board.At(c) != side {
				break
			}
			count++
		}
		if count >= 5 {
			return true
		}
	}
	return false
}

// Stats returns search effort counters from the most recent BestMove call.
func (e *Engine) Stats() Stats {
	return e.stats
}

// center is the board's single opening square, per spec.md §6.
var center = boardstate.Cell{X: 7, Y: 7}

// BestMove returns a strong move for side. It always opens at center, (7,7):
// unconditionally on an empty board, and also when exactly one stone has
// been played, that stone is off-center, and it wasn't side's own — matching
// the original Engine::bestMove()'s `history.moves.empty() ||
// (history.moves.size() == 1 && last != QPoint(7, 7) && checkStone(last) !=
// stone)` guard.
func (e *Engine) BestMove(side boardstate.Side) boardstate.Cell {
	e.stats = Stats{}
	if e.board.Len() == 0 {
		return center
	}
	if e.board.Len() == 1 {
		last := e.LastMove()
		if last != center && e.CellAt(last) != side {
			return center
		}
	}

	candidates := e.generator.Iterate()
	if len(candidates) == 1 {
		return candidates[0].Cell
	}

	e.mainTT.NewSearch()
	e.vcfTT.NewSearch()

	move := boardstate.NoCell
	for d := 1; d <= e.cfg.LimitDepth; d++ {
		if _, m := e.negamax(side, Min, Max, d, nodePV, 0, true); m != boardstate.NoCell {
			move = m
		}
	}
	if move == boardstate.NoCell {
		ordered := orderCandidates(candidates, nil, e.cfg.LimitDepth)
		if len(ordered) > 0 {
			move = ordered[0]
		}
	}

	log.Printf("[search] best_move side=%v move=%v nodes=%d vcf_nodes=%d tt_hit_rate=%.1f%%",
		side, move, e.stats.Nodes, e.stats.VCFNodes, e.mainTT.HitRate())
	return move
}
