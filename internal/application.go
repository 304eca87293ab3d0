package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/cli"
)

// RunApp - wires the game layers and runs the command named by args.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	botService := service.NewBotService()
	gameManager := usecase.NewGameManager(logger, botService)

	log.Debug("starting command line", "args", args)

	if err := cli.New(logger, conf, gameManager).Start(ctx, args); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}
