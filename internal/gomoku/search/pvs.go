package search

import (
	"github.com/hailam/gomoku/internal/gomoku/boardstate"
	"github.com/hailam/gomoku/internal/gomoku/lineeval"
	"github.com/hailam/gomoku/internal/gomoku/movegen"
)

// nodeType classifies a search node for the heuristics (null-move,
// multi-cut) that only apply away from the principal variation.
type nodeType int

const (
	nodePV nodeType = iota
	nodeCut
	nodeAll
)

func matedScore(ply int) int { return Max - ply }
func matingLoss(ply int) int { return Min + ply }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sideDirScore returns the direction-indexed scores belonging to side from
// a movegen.Candidate.
func sideDirScore(c movegen.Candidate, side boardstate.Side) [4]int {
	if side == boardstate.Black {
		return c.BlackDir
	}
	return c.WhiteDir
}

func sideSum(c movegen.Candidate, side boardstate.Side) int {
	if side == boardstate.Black {
		return c.BlackSum
	}
	return c.WhiteSum
}

// zeroSumEval returns side's static evaluation as a zero-sum score: its own
// raw total (Evaluator.Evaluate) minus the opponent's. Evaluate itself is
// deliberately per-side and non-zero-sum (spec.md §4.4, §4.6's terminal
// checks test each side's raw total independently); leaf/stand-pat scores
// still need a single zero-sum number, computed here rather than inside
// Evaluate.
func (e *Engine) zeroSumEval(side boardstate.Side) int {
	return e.evaluator.Evaluate(side) - e.evaluator.Evaluate(side.Opponent())
}

// onThreatLine reports whether cell lies within 5 positions of threat along
// the direction dir's line (row/column/diagonal coordinate), the same test
// spec.md's threat-extension step uses to admit a defensive candidate.
func onThreatLine(cell, threat boardstate.Cell, dir int) bool {
	switch dir {
	case lineeval.DirRow:
		return cell.Y == threat.Y && abs(cell.X-threat.X) <= 5
	case lineeval.DirCol:
		return cell.X == threat.X && abs(cell.Y-threat.Y) <= 5
	case lineeval.DirSlash:
		return cell.Y-cell.X == threat.Y-threat.X && abs(cell.X-threat.X) <= 5
	default: // DirBackslash
		return cell.X+cell.Y == threat.X+threat.Y && abs(cell.X-threat.X) <= 5
	}
}

// threatInfo is what scanThreats finds among candidates: the side's best
// and the opponent's best immediate scores, and which direction produced the opponent's best
// (needed to restrict the reply set to that line).
type threatInfo struct {
	sideMax     int
	sideMaxCell boardstate.Cell
	oppMax      int
	oppMaxCell  boardstate.Cell
	oppMaxDir   int
}

func scanThreats(candidates []movegen.Candidate, side boardstate.Side) threatInfo {
	opp := side.Opponent()
	var info threatInfo
	info.sideMax, info.oppMax = Min, Min
	for _, c := range candidates {
		if s := sideSum(c, side); s > info.sideMax {
			info.sideMax, info.sideMaxCell = s, c.Cell
		}
		for d, v := range sideDirScore(c, opp) {
			if v > info.oppMax {
				info.oppMax, info.oppMaxCell, info.oppMaxDir = v, c.Cell, d
			}
		}
	}
	return info
}

// restrictToThreatResponses narrows candidates to those that either block
// the opponent's five-threat line within 5 cells, or themselves complete a
// Four for side.
func (e *Engine) restrictToThreatResponses(candidates []movegen.Candidate, info threatInfo, side boardstate.Side) []movegen.Candidate {
	out := make([]movegen.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if onThreatLine(c.Cell, info.oppMaxCell, info.oppMaxDir) || e.evaluator.IsFour(c.Cell, side) {
			out = append(out, c)
		}
	}
	return out
}

// findOpenFour returns the first candidate that completes an OpenFour for
// side, if any.
func findOpenFour(candidates []movegen.Candidate, side boardstate.Side) (boardstate.Cell, bool) {
	for _, c := range candidates {
		if sideSum(c, side) >= OpenFour {
			return c.Cell, true
		}
	}
	return boardstate.NoCell, false
}

// negamax is the PVS search. depth counts down from the configured limit;
// ply counts up from the root and is used purely for mate-distance scoring.
// It returns the node's score (from side's point of view) and the best move
// found there (NoCell at terminal nodes or when no candidate was searched).
func (e *Engine) negamax(side boardstate.Side, alpha, beta, depth int, nt nodeType, ply int, allowNull bool) (int, boardstate.Cell) {
	e.stats.Nodes++
	opp := side.Opponent()

	if e.evaluator.Evaluate(side) >= Five {
		return matedScore(ply), boardstate.NoCell
	}
	if e.evaluator.Evaluate(opp) >= Five {
		return matingLoss(ply), boardstate.NoCell
	}
	if e.generator.Empty() {
		return 0, boardstate.NoCell
	}
	if depth <= 0 {
		return e.vcf(side, alpha, beta, VCFDepth, ply)
	}

	hash := e.zobrist.Hash()
	ttMove := boardstate.NoCell
	if ply > 0 {
		probe := e.mainTT.Probe(hash, alpha, beta, depth, side)
		if probe.Found {
			ttMove = probe.Move
			if probe.HasScore && nt != nodePV {
				return probe.Score, probe.Move
			}
		}
	}

	candidates := e.generator.Iterate()
	info := scanThreats(candidates, side)

	if info.sideMax >= Five {
		e.mainTT.Store(hash, depth, matedScore(ply), Exact, info.sideMaxCell, side)
		return matedScore(ply), info.sideMaxCell
	}

	extended := false
	if info.oppMax >= Five {
		extended = true
		candidates = e.restrictToThreatResponses(candidates, info, side)
	} else if openFourCell, ok := findOpenFour(candidates, side); ok {
		candidates = []movegen.Candidate{{Cell: openFourCell, BlackSum: info.sideMax, WhiteSum: info.sideMax}}
	}

	searchDepth := depth
	if extended {
		searchDepth++
	}

	// Null-move pruning: skip our move entirely and see if the opponent,
	// given a free tempo, still can't reach beta. Only valid away from the
	// PV and when no forcing threat line is in play.
	if allowNull && nt != nodePV && !extended && depth >= 3 {
		r := nullMoveReduction(depth)
		reduced := searchDepth - 1 - r
		if reduced < 0 {
			reduced = 0
		}
		score, _ := e.negamax(opp, -beta, -beta+1, reduced, nodeCut, ply+1, false)
		score = -score
		if score >= beta {
			return beta, boardstate.NoCell
		}
	}

	hints := []boardstate.Cell{ttMove}

	// Multi-cut: only at Cut nodes, deep enough, with enough candidates.
	if nt == nodeCut && depth > MCR && len(candidates) >= MCM {
		ordered := orderCandidates(candidates, hints, depth)
		tries := ordered
		if len(tries) > MCM {
			tries = tries[:MCM]
		}
		cutoffs := 0
		var hoisted []boardstate.Cell
		for _, mv := range tries {
			e.make(mv, side)
			score, _ := e.negamax(opp, -beta, -beta+1, searchDepth-MCR-1, nodeCut, ply+1, true)
			score = -score
			e.unmake()
			if score >= beta {
				cutoffs++
				hoisted = append(hoisted, mv)
				if cutoffs >= MCC {
					return beta, boardstate.NoCell
				}
			}
		}
		hints = append(hoisted, hints...)
	}

	ordered := orderCandidates(candidates, hints, searchDepth)
	if len(ordered) == 0 {
		return 0, boardstate.NoCell
	}

	bestScore := Min
	bestMove := ordered[0]
	origAlpha := alpha

	for i, mv := range ordered {
		e.make(mv, side)

		var score int
		childType := nodeCut
		if nt == nodePV && i == 0 {
			childType = nodePV
		} else if nt == nodeAll {
			childType = nodeCut
		} else if nt == nodeCut {
			childType = nodeAll
		}

		if i == 0 {
			s, _ := e.negamax(opp, -beta, -alpha, searchDepth-1, childType, ply+1, true)
			score = -s
		} else {
			s, _ := e.negamax(opp, -alpha-1, -alpha, searchDepth-1, childType, ply+1, true)
			score = -s
			if score > alpha && score < beta {
				s, _ = e.negamax(opp, -beta, -score, searchDepth-1, nodePV, ply+1, true)
				score = -s
			}
		}
		score = adjustMateOut(score)

		e.unmake()

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	var flag Flag
	switch {
	case bestScore <= origAlpha:
		flag = UpperBound
	case bestScore >= beta:
		flag = LowerBound
	default:
		flag = Exact
	}
	e.mainTT.Store(hash, depth, bestScore, flag, bestMove, side)

	return bestScore, bestMove
}
