package search

import "github.com/hailam/gomoku/internal/gomoku/boardstate"

// vcf is the Victory-by-Continuous-Four quiescence search: side only
// considers moves that immediately threaten a Five (a Four, an OpenFour, or
// Five itself); if such a move leaves the opponent with a single forced
// blocking cell, that reply is played automatically and the search
// continues, exactly as spec.md §4.6 describes. If it leaves two or more
// winning completions, side's win is unstoppable.
func (e *Engine) vcf(side boardstate.Side, alpha, beta, depth, ply int) (int, boardstate.Cell) {
	e.stats.VCFNodes++
	opp := side.Opponent()

	if e.evaluator.Evaluate(side) >= Five {
		return matedScore(ply), boardstate.NoCell
	}
	if e.evaluator.Evaluate(opp) >= Five {
		return matingLoss(ply), boardstate.NoCell
	}
	if depth <= 0 || e.generator.Empty() {
		return e.zeroSumEval(side), boardstate.NoCell
	}

	hash := e.zobrist.Hash()
	probe := e.vcfTT.Probe(hash, alpha, beta, depth, side)
	if probe.Found && probe.HasScore {
		return probe.Score, probe.Move
	}

	candidates := e.generator.Iterate()
	forcing := make([]boardstate.Cell, 0, len(candidates))
	for _, c := range candidates {
		if sideSum(c, side) >= Five || sideSum(c, side) >= OpenFour || e.evaluator.IsFour(c.Cell, side) {
			forcing = append(forcing, c.Cell)
		}
	}
	if len(forcing) == 0 {
		return e.zeroSumEval(side), boardstate.NoCell
	}

	ordered := orderCandidates(candidatesFromCells(forcing), []boardstate.Cell{probe.Move}, depth)

	bestScore := Min
	bestMove := ordered[0]
	origAlpha := alpha

	for _, mv := range ordered {
		e.make(mv, side)

		var score int
		if e.evaluator.Evaluate(side) >= Five {
			score = matedScore(ply + 1)
		} else {
			completions := e.winningCompletions(side)
			switch {
			case len(completions) == 0:
				score = e.zeroSumEval(side)
			case len(completions) >= 2:
				score = matedScore(ply + 1)
			default:
				e.make(completions[0], opp)
				// The forced reply hands the move back to side, so the
				// recursive score is already from side's point of view.
				s, _ := e.vcf(side, alpha, beta, depth-1, ply+2)
				score = s
				e.unmake()
			}
		}

		e.unmake()
		score = adjustMateOut(score)

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
	e.vcfTT.Store(hash, depth, bestScore, flag, bestMove, side)

	return bestScore, bestMove
}

// winningCompletions returns every candidate cell that would give side an
// immediate Five if played next.
func (e *Engine) winningCompletions(side boardstate.Side) []boardstate.Cell {
	var out []boardstate.Cell
	for _, c := range e.generator.Iterate() {
		e.make(c.Cell, side)
		win := e.evaluator.Evaluate(side) >= Five
		e.unmake()
		if win {
			out = append(out, c.Cell)
		}
	}
	return out
}
