// Package minimax picks moves by exhaustive game-tree search.
//
// There is no pruning and no depth weighting: every win scores +1 and every
// loss -1 regardless of how far away it is, so among equally scored moves the
// first one in row-major order is chosen.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	ScoreWin  = 1
	ScoreDraw = 0
	ScoreLoss = -1
)

// Engine searches on behalf of the maximizing mark.
type Engine struct {
	maximizer entity.Mark
	minimizer entity.Mark
}

func New(maximizer entity.Mark) *Engine {
	mustBePlayer(maximizer)

	return &Engine{
		maximizer: maximizer,
		minimizer: maximizer.Opponent(),
	}
}

func (that *Engine) Maximizer() entity.Mark {
	return that.maximizer
}

// BestMove - the maximizer's optimal move. The board must have an empty cell.
// Marks are placed and removed in place, the board is unchanged on return.
func (that *Engine) BestMove(board *entity.Board) entity.Move {
	moves := board.EmptyCells()
	if len(moves) == 0 {
		panic("minimax: best move requested on a full board")
	}

	bestScore := math.MinInt
	var bestMove entity.Move

	for _, move := range moves {
		board.Mark(move, that.maximizer)
		score := that.search(board, 0, that.minimizer)
		board.Clear(move)

		// strict comparison keeps the first move found on ties
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove
}

// Evaluate - minimax score of the board from the maximizer's point of view
// with toMove playing next.
func (that *Engine) Evaluate(board *entity.Board, toMove entity.Mark) int {
	mustBePlayer(toMove)

	return that.search(board, 0, toMove)
}

func (that *Engine) search(board *entity.Board, depth int, toMove entity.Mark) int {
	switch {
	case board.HasWon(that.maximizer):
		return ScoreWin
	case board.HasWon(that.minimizer):
		return ScoreLoss
	case board.IsFull():
		return ScoreDraw
	}

	maximizing := toMove == that.maximizer

	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}

	for _, move := range board.EmptyCells() {
		board.Mark(move, toMove)
		score := that.search(board, depth+1, toMove.Opponent())
		board.Clear(move)

		if maximizing {
			bestScore = max(bestScore, score)
		} else {
			bestScore = min(bestScore, score)
		}
	}

	return bestScore
}

// an empty mark never fills the board, so the search would not terminate
func mustBePlayer(mark entity.Mark) {
	if mark != entity.PlayerX && mark != entity.PlayerO {
		panic(fmt.Sprintf("minimax: %d is not a player mark", mark))
	}
}
