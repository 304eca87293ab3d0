package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Action, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the minimax move for the bot whose mark is to move.
func (that *botService) MakeTurn(game *entity.Game) (entity.Action, error) {
	if game.Board.IsTerminal() {
		return entity.Action{}, ErrNoAvailableMoves
	}

	botPlayer := game.PlayerByMark(game.Turn())
	if botPlayer == nil || !botPlayer.IsBot() {
		return entity.Action{}, ErrBotNotFound
	}

	action, _ := tictactoe.BestAction(game.Board)

	if err := tictactoe.MakeTurn(game, botPlayer.Mark, action); err != nil {
		return entity.Action{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return action, nil
}
