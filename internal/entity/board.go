package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

var ErrInvalidBoard = errors.New("invalid board")

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// ParseMark accepts "X" or "O" in either case.
func ParseMark(mark string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", ErrInvalidBoard, mark)
	}
}

// Action addresses a single cell.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Action) inBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board is a value type: transitions return a new Board and never touch the receiver.
type Board [Size][Size]Cell

// Initial - returns the empty board.
func Initial() Board {
	return Board{}
}

// ParseBoard reads 9 row-major characters from "X", "O" and "." (or "-", "_").
// Whitespace and "/" separators are ignored, so "XO./.X./..O" is accepted.
func ParseBoard(raw string) (Board, error) {
	var board Board

	cells := make([]Cell, 0, Size*Size)
	for _, r := range raw {
		switch r {
		case 'X', 'x':
			cells = append(cells, PlayerX)
		case 'O', 'o', '0':
			cells = append(cells, PlayerO)
		case '.', '-', '_':
			cells = append(cells, Empty)
		case ' ', '\t', '\n', '/', '|':
			continue
		default:
			return board, fmt.Errorf("%w: unexpected character %q", ErrInvalidBoard, r)
		}
	}

	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, Size*Size, len(cells))
	}

	for i, cell := range cells {
		board[i/Size][i%Size] = cell
	}

	xCount, oCount := board.countMarks()
	if xCount < oCount || xCount > oCount+1 {
		return board, fmt.Errorf("%w: %d X marks and %d O marks cannot come from alternating play", ErrInvalidBoard, xCount, oCount)
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for _, row := range that {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// IsEmpty - reports whether no mark has been placed yet.
func (that Board) IsEmpty() bool {
	return that == Board{}
}

func (that Board) Cell(action Action) Cell {
	return that[action.Row][action.Col]
}

// Player - returns the mark to move, or Empty once the board is terminal.
func (that Board) Player() Cell {
	if that.IsTerminal() {
		return Empty
	}

	xCount, oCount := that.countMarks()
	if xCount > oCount {
		return PlayerO
	}
	return PlayerX
}

// LegalActions - returns the empty cells in row-major order, nil on a terminal board.
func (that Board) LegalActions() []Action {
	if that.IsTerminal() {
		return nil
	}

	actions := make([]Action, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// ApplyAction - returns a copy of the board with the mover's mark placed on action.
func (that Board) ApplyAction(action Action) (Board, error) {
	if !action.inBounds() {
		return that, fmt.Errorf("%w: cell %s is out of bounds", apperror.ErrInvalidAction, action)
	}

	if that.IsTerminal() {
		return that, fmt.Errorf("%w: %w", apperror.ErrInvalidAction, apperror.ErrGameFinished)
	}

	if that[action.Row][action.Col] != Empty {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidAction, action)
	}

	next := that
	next[action.Row][action.Col] = that.Player()

	return next, nil
}

// EmptyCells - number of cells still free.
func (that Board) EmptyCells() int {
	xCount, oCount := that.countMarks()
	return Size*Size - xCount - oCount
}

func (that Board) countMarks() (int, int) {
	var xCount, oCount int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}
	return xCount, oCount
}
