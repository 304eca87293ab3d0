package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: create a new game
	actualGame := entity.NewGame("123", entity.WithBotType)

	// Then: the game state should correspond to the expected initial state
	expectedGame := &entity.Game{
		ID:     "123",
		Board:  entity.Initial(),
		Winner: entity.Empty,
		Status: entity.StatusOngoing,
		Type:   entity.WithBotType,
	}

	require.Equal(t, expectedGame, actualGame)
	assert.Equal(t, entity.PlayerX, actualGame.Turn())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := entity.NewGame("123", entity.WithBotType)

		// When: player X makes a turn
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedBoard := mustParse(t, "X........")

		assert.Equal(t, expectedBoard, game.Board)
		assert.Equal(t, entity.PlayerO, game.Turn())
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, entity.Empty, game.Winner)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game with player X's queue
		game := entity.NewGame("123", entity.WithBotType)

		// When: player X moves to cell (0,0)
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		err = MakeTurn(game, entity.PlayerO, entity.Action{Row: 0, Col: 0})

		// Then: an error ErrInvalidAction must be returned
		require.ErrorIs(t, err, apperror.ErrInvalidAction)

		// Then: the game state remains unchanged
		assert.Equal(t, mustParse(t, "X........"), game.Board)
		assert.Equal(t, entity.PlayerO, game.Turn())
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.WithBotType)

		// When: player O tries to make a move when it is player X's turn
		err := MakeTurn(game, entity.PlayerO, entity.Action{Row: 0, Col: 1})

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// Then: the game state remains unchanged
		assert.True(t, game.Board.IsEmpty())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.WithBotType)

		// When: an invalid cell is passed (greater than the range)
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: 3, Col: 7})

		// Then: an error ErrInvalidAction must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", entity.WithBotType)

		// When: negative cell index is transmitted
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: -1, Col: 0})

		// Then: an error ErrInvalidAction must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X can complete the top row
		game := entity.NewGame("123", entity.WithBotType)
		game.Board = mustParse(t, "XX./OO./...")

		// When: X plays (0,2)
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: the game is finished with X as the winner
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, entity.Empty, game.Turn())
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &entity.Game{
			Board:  mustParse(t, "XXX/.O./.O."),
			Status: entity.StatusFinished,
			Winner: entity.PlayerX,
		}

		// When: player O tries to make a move after the game is over
		err := MakeTurn(game, entity.PlayerO, entity.Action{Row: 1, Col: 0})

		// Then: an error ErrGameFinished should be returned.
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move After Tie", func(t *testing.T) {
		// Given: a game that ended in a draw
		game := &entity.Game{
			Board:  mustParse(t, "XOX/XOO/OXX"),
			Status: entity.StatusFinished,
		}

		// When: player X tries to make a move after a draw
		err := MakeTurn(game, entity.PlayerX, entity.Action{Row: 1, Col: 0})

		// Then: an error ErrGameFinished should be returned.
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, game.IsDraw())
	})
}
