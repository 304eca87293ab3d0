package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrBadInput    = errors.New("enter a row and a column between 0 and 2, e.g. \"1 2\"")
)

func (that *CLI) runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := that.logger.With("method", "runPlay")

	rawMark, err := cmd.Flags().GetString("mark")
	if err != nil {
		return fmt.Errorf("failed to read mark flag: %w", err)
	}

	mark, err := entity.ParseMark(rawMark)
	if err != nil {
		return fmt.Errorf("bad --mark: %w", err)
	}

	game, err := that.manager.NewGame(ctx, mark)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log = log.With("gameID", game.ID)
	log.Debug("game started")

	fmt.Fprintf(out, "You play %s. Type \"row col\" to move or \"quit\" to leave.\n", that.render.Mark(mark))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintln(out, that.render.Board(game.Board))
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return ErrInputClosed
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "q" {
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		action, err := parseAction(line)
		if err != nil {
			fmt.Fprintln(out, that.render.Error(err.Error()))
			continue
		}

		err = that.manager.MakeTurn(ctx, game, action)
		switch {
		case errors.Is(err, apperror.ErrGameFinished):
			fmt.Fprintln(out, that.render.Board(game.Board))
			fmt.Fprintln(out, that.render.Title(result(game, mark)))
			return nil
		case errors.Is(err, apperror.ErrInvalidAction), errors.Is(err, apperror.ErrNotYourTurn):
			log.Debug("rejected move", "action", action.String(), "error", err)
			fmt.Fprintln(out, that.render.Error(err.Error()))
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

// parseAction accepts "1 2", "1,2" and "12".
func parseAction(line string) (entity.Action, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) == 1 && len(fields[0]) == 2 {
		fields = []string{fields[0][:1], fields[0][1:]}
	}

	if len(fields) != 2 {
		return entity.Action{}, ErrBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Action{}, ErrBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Action{}, ErrBadInput
	}

	return entity.Action{Row: row, Col: col}, nil
}

func result(game *entity.Game, human entity.Cell) string {
	switch game.Winner {
	case human:
		return "Game over: you win!"
	case entity.Empty:
		return "Game over: draw."
	default:
		return "Game over: you lose."
	}
}
