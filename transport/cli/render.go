package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	colorX     = lipgloss.Color("#2CD7C7")
	colorO     = lipgloss.Color("#F4D03F")
	colorMuted = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")
)

type renderer struct {
	x     lipgloss.Style
	o     lipgloss.Style
	empty lipgloss.Style
	grid  lipgloss.Style
	frame lipgloss.Style
	title lipgloss.Style
	err   lipgloss.Style
}

func newRenderer(plain bool) *renderer {
	base := lipgloss.NewStyle()
	frame := base.Border(lipgloss.RoundedBorder()).Padding(0, 1)

	if plain {
		return &renderer{x: base, o: base, empty: base, grid: base, frame: frame, title: base, err: base}
	}

	return &renderer{
		x:     base.Bold(true).Foreground(colorX),
		o:     base.Bold(true).Foreground(colorO),
		empty: base.Foreground(colorMuted),
		grid:  base.Foreground(colorMuted),
		frame: frame.BorderForeground(colorMuted),
		title: base.Bold(true),
		err:   base.Foreground(colorError),
	}
}

func (that *renderer) Board(board entity.Board) string {
	rows := make([]string, 0, 2*entity.Size-1)
	for row := 0; row < entity.Size; row++ {
		cells := make([]string, 0, entity.Size)
		for col := 0; col < entity.Size; col++ {
			cells = append(cells, that.Mark(board[row][col]))
		}
		rows = append(rows, strings.Join(cells, that.grid.Render(" │ ")))

		if row < entity.Size-1 {
			rows = append(rows, that.grid.Render("──┼───┼──"))
		}
	}

	return that.frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (that *renderer) Mark(cell entity.Cell) string {
	switch cell {
	case entity.PlayerX:
		return that.x.Render("X")
	case entity.PlayerO:
		return that.o.Render("O")
	default:
		return that.empty.Render("·")
	}
}

func (that *renderer) Title(text string) string {
	return that.title.Render(text)
}

func (that *renderer) Error(text string) string {
	return that.err.Render(text)
}
