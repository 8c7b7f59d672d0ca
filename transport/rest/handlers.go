package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type gamePlayService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move entity.Move) (*entity.Game, error)
	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	BestMove(board entity.Board) (entity.Move, error)
}

type handlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

func newHandlers(logger *slog.Logger, gamePlay gamePlayService) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

type boardRequest struct {
	Board entity.Board `json:"board"`
}

type outcomeResponse struct {
	Outcome     entity.Outcome `json:"outcome"`
	WinningLine *entity.Line   `json:"winning_line,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var move entity.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid move payload"})
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) restartGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "restartGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeBadBoard(w, err)
		return
	}

	move, err := that.gamePlay.BestMove(req.Board)
	if err != nil {
		that.writeError(w, "bestMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, move)
}

func (that *handlers) outcome(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeBadBoard(w, err)
		return
	}

	resp := outcomeResponse{Outcome: req.Board.Outcome()}
	if line, ok := req.Board.WinningLine(); ok {
		resp.WinningLine = &line
	}

	that.writeJSON(w, http.StatusOK, resp)
}

func (that *handlers) writeBadBoard(w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrInvalidBoard) || errors.Is(err, entity.ErrUnknownMark) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid board payload"})
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, service.ErrBoardIsTerminal):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
