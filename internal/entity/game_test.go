package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: creating a new game
	game := NewGame("123")

	// Then: the board is empty and the human moves first
	expectedGame := &Game{
		ID:      "123",
		Board:   Board{},
		Status:  StatusOngoing,
		Turn:    PlayerX,
		Outcome: OutcomeOngoing,
	}

	require.Equal(t, expectedGame, game)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing and not finished
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: Board{
				{x, x, x},
				{o, o, e},
				{e, e, e},
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, OutcomeXWin, game.Outcome)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
		require.NotNil(t, game.WinningLine)
		assert.Equal(t, Line{{0, 0}, {0, 1}, {0, 2}}, *game.WinningLine)
	})

	t.Run("Updates game state when the game is a draw", func(t *testing.T) {
		// Given: a game that ended without a line
		game := &Game{
			Board: Board{
				{x, o, x},
				{x, o, o},
				{o, x, x},
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished without a winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, OutcomeDraw, game.Outcome)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Nil(t, game.WinningLine)
	})

	t.Run("Game remains ongoing when there is no winner or draw", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: Board{
				{x, o, e},
				{e, x, e},
				{e, e, o},
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing with the same turn
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, OutcomeOngoing, game.Outcome)
		assert.Equal(t, PlayerX, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123")

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: The board holds the mark and the turn passes to O
		expectedGame := &Game{
			ID: "123",
			Board: Board{
				{x, e, e},
				{e, e, e},
				{e, e, e},
			},
			Status:  StatusOngoing,
			Turn:    PlayerO,
			Outcome: OutcomeOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell (0, 0) is occupied by Player X
		game := NewGame("123")
		require.NoError(t, game.MakeTurn(PlayerX, Move{Row: 0, Col: 0}))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, Move{Row: 0, Col: 0})

		// Then: An ErrCellOccupied error should be returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, PlayerX, game.Board.At(Move{Row: 0, Col: 0}))
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123")

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, Move{Row: 0, Col: 1})

		// Then: An ErrNotYourTurn error should be returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123")

		assert.ErrorIs(t, game.MakeTurn(PlayerX, Move{Row: 3, Col: 0}), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(PlayerX, Move{Row: 0, Col: -1}), apperror.ErrInvalidCell)
	})

	t.Run("Error on Finished Game", func(t *testing.T) {
		// Given: a game X has already won
		game := NewGame("123")
		game.Board = Board{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		}
		game.UpdateGameState()

		// When: O tries to keep playing
		err := game.MakeTurn(PlayerO, Move{Row: 1, Col: 2})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished game
	game := NewGame("123")
	game.Board = Board{
		{o, o, o},
		{x, x, e},
		{x, e, e},
	}
	game.UpdateGameState()
	require.True(t, game.IsFinished())

	// When: restarting it
	game.Restart()

	// Then: it looks like a fresh game with the same id
	require.Equal(t, NewGame("123"), game)
}
