package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gameManager interface {
	NewGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, action entity.Action) error
	SelfPlay(ctx context.Context) (*entity.Game, error)
}

type CLI struct {
	logger  *slog.Logger
	conf    *config.Config
	manager gameManager
	render  *renderer
}

func New(logger *slog.Logger, conf *config.Config, manager gameManager) *CLI {
	return &CLI{
		logger:  logger.With("component", "cli"),
		conf:    conf,
		manager: manager,
		render:  newRenderer(conf.Game.NoColor),
	}
}

// Start - runs the command named by args.
func (that *CLI) Start(ctx context.Context, args []string) error {
	cmd := that.Command()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// Command - builds the command tree. Running the root alone starts a game.
func (that *CLI) Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Play tic-tac-toe against an exhaustive minimax search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the computer on the terminal",
		Args:  cobra.NoArgs,
		RunE:  that.runPlay,
	}
	playCmd.Flags().String("mark", that.conf.Game.HumanMark, "your mark, X moves first")

	selfPlayCmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the search play both sides",
		Args:  cobra.NoArgs,
		RunE:  that.runSelfPlay,
	}
	selfPlayCmd.Flags().Int("rounds", that.conf.Game.SelfPlayRounds, "number of games to play")

	analyzeCmd := &cobra.Command{
		Use:   "analyze BOARD",
		Short: "Show the state of a board and the optimal move",
		Long: `Show the state of a board and the optimal move.

BOARD lists the 9 cells row by row using X, O and '.', for example "XX./OO./...".`,
		Args: cobra.ExactArgs(1),
		RunE: that.runAnalyze,
	}

	rootCmd.RunE = playCmd.RunE
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.AddCommand(playCmd, selfPlayCmd, analyzeCmd)

	return rootCmd
}
