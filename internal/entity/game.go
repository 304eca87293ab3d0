package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	WithBotType  = "bot"
	SelfPlayType = "selfplay"
)

type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Winner  Cell      `json:"winner"`
	Status  string    `json:"status"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  Initial(),
		Status: StatusOngoing,
		Type:   gameType,
	}
}

// Turn - mark to move, derived from the board.
func (that *Game) Turn() Cell {
	return that.Board.Player()
}

func (that *Game) UpdateGameState() {
	if !that.Board.IsTerminal() {
		that.Status = StatusOngoing
		return
	}

	// Winner stays Empty on a draw
	that.Winner = that.Board.Winner()
	that.Status = StatusFinished
}

// Play places the current mover's mark on action.
func (that *Game) Play(action Action) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	next, err := that.Board.ApplyAction(action)
	if err != nil {
		return fmt.Errorf("failed to apply action: %w", err)
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

// PlayerByMark - returns the player holding mark, nil if nobody does.
func (that *Game) PlayerByMark(mark Cell) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}
	return nil
}
