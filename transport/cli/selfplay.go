package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ErrNotDrawn = errors.New("optimal self-play did not end in a draw")

func (that *CLI) runSelfPlay(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	rounds, err := cmd.Flags().GetInt("rounds")
	if err != nil {
		return fmt.Errorf("failed to read rounds flag: %w", err)
	}

	if rounds < 1 {
		return fmt.Errorf("--rounds must be positive, got %d", rounds)
	}

	for round := 1; round <= rounds; round++ {
		game, err := that.manager.SelfPlay(cmd.Context())
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		fmt.Fprintln(out, that.render.Board(game.Board))

		if !game.IsDraw() {
			fmt.Fprintln(out, that.render.Error(fmt.Sprintf("Round %d: %s won", round, game.Winner)))
			return fmt.Errorf("round %d: %w", round, ErrNotDrawn)
		}

		fmt.Fprintln(out, that.render.Title(fmt.Sprintf("Round %d: draw", round)))
	}

	return nil
}
