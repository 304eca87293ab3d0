package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Evaluation is the minimax value of a board plus how that value is reached.
// It is returned by value from every recursive call, so concurrent searches
// on different boards share nothing.
type Evaluation struct {
	// Utility from X's side: +1, 0 or -1.
	Utility int
	// Plies to the terminal position along the principal line.
	Plies int
	// Nodes counts the interior positions expanded, the evaluated board included.
	Nodes int
}

var center = entity.Action{Row: 1, Col: 1}

// BestAction - returns the optimal action for the player to move.
// The second result is false when the board is terminal.
func BestAction(board entity.Board) (entity.Action, bool) {
	action, _, ok := Decide(board)
	return action, ok
}

// Decide is BestAction that also reports the evaluation of the chosen line.
//
// Among actions with the same utility the mover takes the fastest win, the
// fastest draw and the slowest loss. Remaining ties keep the first action in
// row-major order.
func Decide(board entity.Board) (entity.Action, Evaluation, bool) {
	if board.IsTerminal() {
		return entity.Action{}, Evaluation{}, false
	}

	// the empty board is a known draw and the center is an optimal opening
	if board.IsEmpty() {
		return center, Evaluation{Utility: entity.UtilityDraw, Plies: entity.Size * entity.Size}, true
	}

	maximizing := board.Player() == entity.PlayerX

	var (
		best       Evaluation
		bestAction entity.Action
		found      bool
	)

	nodes := 1
	for _, action := range board.LegalActions() {
		child := mustApply(board, action)

		var eval Evaluation
		if maximizing {
			eval = MinValue(child)
		} else {
			eval = MaxValue(child)
		}
		nodes += eval.Nodes
		eval.Plies++

		if !found || prefers(maximizing, eval, best) {
			best, bestAction, found = eval, action, true
		}
	}

	best.Nodes = nodes

	return bestAction, best, found
}

// Value - minimax value of the board for whichever side is to move.
func Value(board entity.Board) Evaluation {
	if board.Player() == entity.PlayerO {
		return MinValue(board)
	}
	return MaxValue(board)
}

// MaxValue evaluates a board where the maximizing side (X) moves.
func MaxValue(board entity.Board) Evaluation {
	if board.IsTerminal() {
		return Evaluation{Utility: board.Utility()}
	}
	return expand(board, true, MinValue)
}

// MinValue evaluates a board where the minimizing side (O) moves.
func MinValue(board entity.Board) Evaluation {
	if board.IsTerminal() {
		return Evaluation{Utility: board.Utility()}
	}
	return expand(board, false, MaxValue)
}

func expand(board entity.Board, maximizing bool, next func(entity.Board) Evaluation) Evaluation {
	var (
		best  Evaluation
		found bool
	)

	nodes := 1
	for _, action := range board.LegalActions() {
		eval := next(mustApply(board, action))
		nodes += eval.Nodes
		eval.Plies++

		if !found || prefers(maximizing, eval, best) {
			best, found = eval, true
		}
	}

	best.Nodes = nodes

	return best
}

// prefers reports whether candidate is strictly better than incumbent for the mover.
func prefers(maximizing bool, candidate, incumbent Evaluation) bool {
	cu, iu := candidate.Utility, incumbent.Utility
	if !maximizing {
		cu, iu = -cu, -iu
	}

	if cu != iu {
		return cu > iu
	}

	if cu < 0 {
		return candidate.Plies > incumbent.Plies
	}
	return candidate.Plies < incumbent.Plies
}

// mustApply is only called with actions taken from LegalActions, so a failure
// means the board model and the search disagree.
func mustApply(board entity.Board, action entity.Action) entity.Board {
	next, err := board.ApplyAction(action)
	if err != nil {
		panic(fmt.Sprintf("search applied illegal action %s on %s: %v", action, board, err))
	}
	return next
}
