package entity

// WinLines lists every line that ends the game, checked in this order:
// rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

const (
	UtilityOWins = -1
	UtilityDraw  = 0
	UtilityXWins = 1
)

// Winner - returns the mark of the first completed line, or Empty.
func (that Board) Winner() Cell {
	for _, line := range WinLines {
		a, b, c := that.Cell(line[0]), that.Cell(line[1]), that.Cell(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// IsTerminal - the game is over on a win or on a full board.
func (that Board) IsTerminal() bool {
	if that.Winner() != Empty {
		return true
	}

	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Utility scores the board from X's side. Only meaningful on terminal boards;
// anything without a winner scores as a draw.
func (that Board) Utility() int {
	switch that.Winner() {
	case PlayerX:
		return UtilityXWins
	case PlayerO:
		return UtilityOWins
	default:
		return UtilityDraw
	}
}
