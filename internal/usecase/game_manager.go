package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var (
	ErrInvalidMark    = errors.New("human mark must be X or O")
	ErrPlayerNotFound = errors.New("human player not found")
)

type botService interface {
	MakeTurn(game *entity.Game) (entity.Action, error)
}

type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame - starts a human vs bot game. The bot opens when it holds X.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error) {
	if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidMark, humanMark)
	}

	game := entity.NewGame(pkg.GenerateGameID(), entity.WithBotType)
	game.Players = []*entity.Player{
		{ID: pkg.GeneratePlayerID(), Mark: humanMark},
		entity.NewBotPlayer(pkg.GeneratePlayerID(), humanMark.Opponent()),
	}

	log := that.logger.With("method", "NewGame", "gameID", game.ID)

	if humanMark == entity.PlayerO {
		if err := that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	log.Info("game created", "humanMark", humanMark.String())

	return game, nil
}

// MakeTurn - plays the human move and the bot reply.
// Returns apperror.ErrGameFinished together with the final state once the game is over.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, action entity.Action) error {
	human := humanPlayer(game)
	if human == nil {
		return ErrPlayerNotFound
	}

	if err := tictactoe.MakeTurn(game, human.Mark, action); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.logResult(game)
		return apperror.ErrGameFinished
	}

	if err := that.botTurn(ctx, game); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.logResult(game)
		return apperror.ErrGameFinished
	}

	return nil
}

// SelfPlay - lets the bot play both sides until the game ends.
func (that *GameManager) SelfPlay(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID(), entity.SelfPlayType)
	game.Players = []*entity.Player{
		entity.NewBotPlayer(pkg.GeneratePlayerID(), entity.PlayerX),
		entity.NewBotPlayer(pkg.GeneratePlayerID(), entity.PlayerO),
	}

	for !game.IsFinished() {
		if err := that.botTurn(ctx, game); err != nil {
			return game, fmt.Errorf("self-play stopped: %w", err)
		}
	}

	that.logResult(game)

	return game, nil
}

func (that *GameManager) botTurn(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done: %w", err)
	}

	mark := game.Turn()

	action, err := that.bot.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.logger.Debug("bot moved", "gameID", game.ID, "mark", mark.String(), "action", action.String())

	return nil
}

func (that *GameManager) logResult(game *entity.Game) {
	log := that.logger.With("method", "logResult", "gameID", game.ID)

	if game.IsDraw() {
		log.Info("game finished in a draw", "board", game.Board.String())
		return
	}

	log.Info("game finished", "winner", game.Winner.String(), "board", game.Board.String())
}

func humanPlayer(game *entity.Game) *entity.Player {
	for _, player := range game.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}
