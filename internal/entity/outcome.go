package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownMark    = errors.New("unknown mark")
	ErrUnknownOutcome = errors.New("unknown outcome")
	ErrInvalidBoard   = errors.New("board must be 3 rows of 3 cells")
)

// Outcome - derived from a board, never stored on its own.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeXWin
	OutcomeOWin
	OutcomeDraw
)

var outcomeNames = map[Outcome]string{
	OutcomeOngoing: "ongoing",
	OutcomeXWin:    "x_win",
	OutcomeOWin:    "o_win",
	OutcomeDraw:    "draw",
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}

	return fmt.Sprintf("outcome(%d)", uint8(that))
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeOngoing
}

// Winner - the winning mark, EmptyCell for a draw or an ongoing game.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWin:
		return PlayerX
	case OutcomeOWin:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Outcome) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	for outcome, name := range outcomeNames {
		if name == value {
			*that = outcome
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownOutcome, value)
}
