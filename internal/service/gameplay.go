package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrBoardIsTerminal = errors.New("board is already terminal")

type GamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	BestMove(board entity.Board) (entity.Move, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
	searcher    moveSearcher
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService, searcher moveSearcher) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
		searcher:    searcher,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human move and, while the game goes on, the computer's answer.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(entity.HumanMark, move); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		botMove, botErr := that.botService.MakeTurn(game)
		if botErr != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", botErr)
		}

		log.Debug("bot answered", "row", botMove.Row, "col", botMove.Col)
	}

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome.String())
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.Restart()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Debug("game restarted", "gameID", gameID)

	return game, nil
}

func (that *gamePlayService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// BestMove - stateless search on a caller supplied board. Terminal boards are
// rejected here so the search never sees one.
func (that *gamePlayService) BestMove(board entity.Board) (entity.Move, error) {
	if outcome := board.Outcome(); outcome.IsTerminal() {
		return entity.Move{}, fmt.Errorf("%w: %s", ErrBoardIsTerminal, outcome)
	}

	return that.searcher.BestMove(&board), nil
}
