package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type moveSearcher interface {
	BestMove(board *entity.Board) entity.Move
	Maximizer() entity.Mark
}

type botService struct {
	searcher moveSearcher
}

func NewBotService(searcher moveSearcher) BotService {
	return &botService{
		searcher: searcher,
	}
}

// MakeTurn - plays the searcher's best move for its own mark.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if game.Board.IsFull() {
		return entity.Move{}, ErrNoAvailableMoves
	}

	move := that.searcher.BestMove(&game.Board)

	if err := game.MakeTurn(that.searcher.Maximizer(), move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
