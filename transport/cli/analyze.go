package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func (that *CLI) runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	board, err := entity.ParseBoard(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}

	fmt.Fprintln(out, that.render.Board(board))
	fmt.Fprintf(out, "terminal: %t\n", board.IsTerminal())

	if board.IsTerminal() {
		winner := "none"
		if w := board.Winner(); w != entity.Empty {
			winner = that.render.Mark(w)
		}
		fmt.Fprintf(out, "winner:   %s\n", winner)
		fmt.Fprintf(out, "utility:  %d\n", board.Utility())
		return nil
	}

	actions := board.LegalActions()
	legal := make([]string, 0, len(actions))
	for _, action := range actions {
		legal = append(legal, action.String())
	}

	fmt.Fprintf(out, "to move:  %s\n", that.render.Mark(board.Player()))
	fmt.Fprintf(out, "legal:    %s\n", strings.Join(legal, " "))

	action, eval, _ := tictactoe.Decide(board)

	fmt.Fprintf(out, "value:    %s in %d plies (%d positions searched)\n", describe(eval.Utility), eval.Plies, eval.Nodes)
	fmt.Fprintf(out, "best:     %s\n", that.render.Title(action.String()))

	return nil
}

func describe(utility int) string {
	switch {
	case utility > 0:
		return "X wins"
	case utility < 0:
		return "O wins"
	default:
		return "draw"
	}
}
