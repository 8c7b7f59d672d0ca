package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// HumanMark always moves first, ComputerMark answers.
	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

type Game struct {
	ID          string  `json:"id"`
	Board       Board   `json:"board"`
	Status      string  `json:"status"`
	Turn        Mark    `json:"player_turn"`
	Outcome     Outcome `json:"outcome"`
	Winner      Mark    `json:"winner"`
	WinningLine *Line   `json:"winning_line,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Turn:    HumanMark,
		Status:  StatusOngoing,
		Outcome: OutcomeOngoing,
	}
}

// UpdateGameState - reclassifies the board and finishes the game on a terminal outcome.
func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Outcome()
	that.Winner = that.Outcome.Winner()
	that.WinningLine = nil

	if !that.Outcome.IsTerminal() {
		that.Status = StatusOngoing
		return
	}

	that.Status = StatusFinished
	that.Turn = EmptyCell

	if line, ok := that.Board.WinningLine(); ok {
		that.WinningLine = &line
	}
}

func (that *Game) MakeTurn(playerMark Mark, move Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.IsCellEmpty(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	that.Board.Mark(move, playerMark)
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

// Restart - clears the board for a new round in the same session.
func (that *Game) Restart() {
	that.Board = Board{}
	that.Turn = HumanMark
	that.Status = StatusOngoing
	that.Outcome = OutcomeOngoing
	that.Winner = EmptyCell
	that.WinningLine = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
