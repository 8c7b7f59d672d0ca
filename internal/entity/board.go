package entity

import (
	"encoding/json"
	"fmt"
)

const BoardSize = 3

// Mark - state of a single cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	mark, err := ParseMark(value)
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

func ParseMark(value string) (Mark, error) {
	switch value {
	case "":
		return EmptyCell, nil
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrUnknownMark, value)
	}
}

// Move - a 0-indexed (row, col) cell coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Line - three cells that win the game when they hold the same mark.
type Line [BoardSize]Move

// WinLines - columns, rows, ascending diagonal, descending diagonal.
// WinningLine reports the first completed one in this order.
var WinLines = [8]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
}

// Board - 3x3 grid stored row-major. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// UnmarshalJSON - accepts exactly BoardSize rows of BoardSize cells.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Mark
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(rows) != BoardSize {
		return fmt.Errorf("%w: %d rows", ErrInvalidBoard, len(rows))
	}

	var board Board
	for row, cells := range rows {
		if len(cells) != BoardSize {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(cells))
		}

		copy(board[row][:], cells)
	}

	*that = board

	return nil
}

func (that *Board) At(move Move) Mark {
	mustBeInRange(move)
	return that[move.Row][move.Col]
}

func (that *Board) IsCellEmpty(row, col int) bool {
	return that.At(Move{Row: row, Col: col}) == EmptyCell
}

func (that *Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// HasWon - true iff player occupies every cell of at least one line.
func (that *Board) HasWon(player Mark) bool {
	if player == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		if that.lineOwner(line) == player {
			return true
		}
	}

	return false
}

// WinningLine - the first completed line, for clients that highlight it.
func (that *Board) WinningLine() (Line, bool) {
	for _, line := range WinLines {
		if that.lineOwner(line) != EmptyCell {
			return line, true
		}
	}

	return Line{}, false
}

// Outcome - classifies the board. Both players winning at once cannot happen
// under alternating play; X is checked first in that case.
func (that *Board) Outcome() Outcome {
	switch {
	case that.HasWon(PlayerX):
		return OutcomeXWin
	case that.HasWon(PlayerO):
		return OutcomeOWin
	case that.IsFull():
		return OutcomeDraw
	default:
		return OutcomeOngoing
	}
}

// Mark - places player on the cell, overwriting whatever was there.
func (that *Board) Mark(move Move, player Mark) {
	mustBeInRange(move)
	that[move.Row][move.Col] = player
}

func (that *Board) Clear(move Move) {
	that.Mark(move, EmptyCell)
}

// EmptyCells - empty cells in row-major scan order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) lineOwner(line Line) Mark {
	first := that[line[0].Row][line[0].Col]
	for _, cell := range line[1:] {
		if that[cell.Row][cell.Col] != first {
			return EmptyCell
		}
	}

	return first
}

func mustBeInRange(move Move) {
	if !move.InRange() {
		panic(fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", move.Row, move.Col, BoardSize, BoardSize))
	}
}
