package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Game: config.Game{
			HumanMark:      "X",
			SelfPlayRounds: 1,
			NoColor:        true,
		},
	}
}

func run(ctx context.Context, t *testing.T, st *suite.Suite, input string, args ...string) (string, error) {
	t.Helper()

	manager := usecase.NewGameManager(st.Logger, service.NewBotService())
	cmd := New(st.Logger, testConfig(), manager).Command()

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.ExecuteContext(ctx)

	return out.String(), err
}

func TestAnalyze(t *testing.T) {
	t.Run("Finds the winning move", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: analyzing a board where X completes the top row
		out, err := run(ctx, t, st, "", "analyze", "XX./OO./...")

		// Then: the win at (0,2) is reported
		require.NoError(t, err)
		assert.Contains(t, out, "terminal: false")
		assert.Contains(t, out, "to move:  X")
		assert.Contains(t, out, "value:    X wins in 1 plies")
		assert.Contains(t, out, "best:     (0, 2)")
	})

	t.Run("Reports a finished board", func(t *testing.T) {
		ctx, st := suite.New(t)

		out, err := run(ctx, t, st, "", "analyze", "XOX/XOO/OXX")

		require.NoError(t, err)
		assert.Contains(t, out, "terminal: true")
		assert.Contains(t, out, "winner:   none")
		assert.Contains(t, out, "utility:  0")
		assert.NotContains(t, out, "best:")
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := run(ctx, t, st, "", "analyze", "XX")

		assert.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}

func TestSelfPlay(t *testing.T) {
	ctx, st := suite.New(t)

	// When: the search plays itself twice
	out, err := run(ctx, t, st, "", "selfplay", "--rounds", "2")

	// Then: both rounds are draws
	require.NoError(t, err)
	assert.Contains(t, out, "Round 1: draw")
	assert.Contains(t, out, "Round 2: draw")
}

func TestPlay(t *testing.T) {
	t.Run("Plays until the game ends", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: input that tries every cell, occupied ones are rejected and re-prompted
		input := "0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"

		// When: playing as X
		out, err := run(ctx, t, st, input, "play")

		// Then: the game reaches a result and the search never lost
		require.NoError(t, err)
		assert.Contains(t, out, "Game over:")
		assert.NotContains(t, out, "you win")
	})

	t.Run("Root command starts a game as O", func(t *testing.T) {
		ctx, st := suite.New(t)

		out, err := run(ctx, t, st, "quit\n", "--mark", "O")

		require.NoError(t, err)
		assert.Contains(t, out, "You play O")
		assert.Contains(t, out, "Bye.")
	})

	t.Run("Bad input is reported and re-prompted", func(t *testing.T) {
		ctx, st := suite.New(t)

		out, err := run(ctx, t, st, "hello\n5 5\nquit\n", "play")

		require.NoError(t, err)
		assert.Contains(t, out, ErrBadInput.Error())
		assert.Contains(t, out, "out of bounds")
	})

	t.Run("Error when input ends early", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := run(ctx, t, st, "1 1\n", "play")

		assert.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("Error on unknown mark", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := run(ctx, t, st, "", "play", "--mark", "Z")

		assert.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		line     string
		expected entity.Action
		wantErr  bool
	}{
		{line: "1 2", expected: entity.Action{Row: 1, Col: 2}},
		{line: "0,0", expected: entity.Action{Row: 0, Col: 0}},
		{line: "21", expected: entity.Action{Row: 2, Col: 1}},
		{line: "7 7", expected: entity.Action{Row: 7, Col: 7}},
		{line: "one two", wantErr: true},
		{line: "1", wantErr: true},
		{line: "1 2 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			action, err := parseAction(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}
