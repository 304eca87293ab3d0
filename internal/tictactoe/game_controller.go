package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MakeTurn - validates that mark is the mover and plays action on the game.
func MakeTurn(game *entity.Game, mark entity.Cell, action entity.Action) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn() != mark {
		return apperror.ErrNotYourTurn
	}

	if err := game.Play(action); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}
