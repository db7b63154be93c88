package lineeval

import (
	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/pattern"
)

// defaultCacheCost bounds each process-wide shape cache at roughly this many
// bytes of key strings. Each entry costs its key length: at most 9 bytes for
// a window, 15 for a full line, so this holds on the order of a hundred
// thousand entries — far more than the handful of genuinely distinct 9-char
// strings that ever occur, in practice.
const defaultCacheCost = 1 << 20

// Shared, process-wide matchers and caches. Building the Aho-Corasick
// automata is pure and the caches are safe for concurrent use, so every
// Evaluator an application creates reuses them instead of repeating the
// construction cost per game, matching spec.md §5's guidance that read-mostly
// state (matcher, caches) is shared while each engine's own board/line state
// is private.
var (
	sharedShapeMatcher = pattern.NewShapeMatcher()
	sharedFourMatcher  = pattern.NewFourMatcher()
	sharedScoreCache   = newShapeCache(defaultCacheCost)
	sharedFourCache    = newShapeCache(defaultCacheCost)
)

// snapshot captures everything Restore needs to undo one Update.
type snapshot struct {
	cell   boardstate.Cell
	side   boardstate.Side
	lines  [4]AffectedLine
	before [4][2]int // per affected line, [black,white] score before the move
}

// Evaluator owns one game's incremental line model and the per-line,
// per-side score bookkeeping built on top of it: blackScores/whiteScores
// hold the current score of every one of the 72 lines from each side's
// point of view, and blackTotal/whiteTotal are their running sums — exactly
// the quantities the original Evaluator::blackScore/whiteScore maintain.
type Evaluator struct {
	lines *LineModel

	blackScores [numLines]int
	whiteScores [numLines]int
	blackTotal  int
	whiteTotal  int

	history []snapshot
}

// NewEvaluator returns an Evaluator for a fresh, empty board.
func NewEvaluator() *Evaluator {
	return &Evaluator{lines: NewLineModel()}
}

// Update plays (cell, side): it marks the stone in the line model, rescores
// exactly the up-to-four lines that changed, and folds the deltas into the
// running per-side totals. It must be called once per Board.Place, in the
// same order.
func (e *Evaluator) Update(cell boardstate.Cell, side boardstate.Side) {
	affected := AffectedLines(cell)

	snap := snapshot{cell: cell, side: side, lines: affected}
	for i, al := range affected {
		if !al.Valid {
			continue
		}
		snap.before[i] = [2]int{e.blackScores[al.Index], e.whiteScores[al.Index]}
	}

	e.lines.Place(cell, side)

	for i, al := range affected {
		if !al.Valid {
			continue
		}
		newBlack := e.scoreLine(boardstate.Black, al.Index)
		newWhite := e.scoreLine(boardstate.White, al.Index)

		e.blackTotal += newBlack - snap.before[i][0]
		e.whiteTotal += newWhite - snap.before[i][1]

		e.blackScores[al.Index] = newBlack
		e.whiteScores[al.Index] = newWhite
	}

	e.history = append(e.history, snap)
}

// Restore undoes the most recent Update. It must be called once per
// Board.UndoLast, in LIFO order relative to the matching Update calls.
func (e *Evaluator) Restore() {
	n := len(e.history) - 1
	snap := e.history[n]
	e.history = e.history[:n]

	e.lines.Remove(snap.cell, snap.side)

	for i, al := range snap.lines {
		if !al.Valid {
			continue
		}
		e.blackTotal += snap.before[i][0] - e.blackScores[al.Index]
		e.whiteTotal += snap.before[i][1] - e.whiteScores[al.Index]

		e.blackScores[al.Index] = snap.before[i][0]
		e.whiteScores[al.Index] = snap.before[i][1]
	}
}

func (e *Evaluator) scoreLine(side boardstate.Side, index int) int {
	s := string(e.lines.Line(side, index))
	return sharedScoreCache.get(s, func() int {
		return sharedShapeMatcher.ScoreLine(s)
	})
}

// Evaluate returns side's current total shape score, matching the original
// Evaluator::evaluate (`return stone == Black ? blackTotalScore :
// whiteTotalScore;`) — a raw per-side total, not a net/zero-sum score.
// Callers that need a zero-sum value for one side compute
// Evaluate(side) - Evaluate(opponent) themselves.
func (e *Evaluator) Evaluate(side boardstate.Side) int {
	if side == boardstate.Black {
		return e.blackTotal
	}
	return e.whiteTotal
}

// ScoreAt returns the shape scores, for both sides independently, of the
// hypothetical window formed by imagining a stone at move in direction —
// without mutating any persisted state. The caller typically calls this for
// all four directions and sums the results to rank an empty candidate cell.
func (e *Evaluator) ScoreAt(move boardstate.Cell, direction int) (black, white int) {
	blackWindow, whiteWindow, ok := e.lines.Window(move, direction)
	if !ok {
		return 0, 0
	}
	bs := string(blackWindow)
	ws := string(whiteWindow)
	black = sharedScoreCache.get(bs, func() int { return sharedShapeMatcher.ScoreLine(bs) })
	white = sharedScoreCache.get(ws, func() int { return sharedShapeMatcher.ScoreLine(ws) })
	return black, white
}

// IsFour reports whether placing side's stone at move would complete at
// least one Four shape in any of the four directions, using the secondary
// four-only matcher and its own cache.
func (e *Evaluator) IsFour(move boardstate.Cell, side boardstate.Side) bool {
	for dir := DirRow; dir <= DirBackslash; dir++ {
		blackWindow, whiteWindow, ok := e.lines.Window(move, dir)
		if !ok {
			continue
		}
		window := blackWindow
		if side == boardstate.White {
			window = whiteWindow
		}
		s := string(window)
		hit := sharedFourCache.get(s, func() int {
			if sharedFourMatcher.Matches(s) {
				return 1
			}
			return 0
		})
		if hit == 1 {
			return true
		}
	}
	return false
}
