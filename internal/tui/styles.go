package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Piece colours do not depend on the theme.
var (
	RedPieceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackPieceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#DDDDDD")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// styles are the parts of the screen painted with the theme palette.
type styles struct {
	Title    lipgloss.Style
	Board    lipgloss.Style
	Cell     lipgloss.Style
	Winning  lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	Button   lipgloss.Style
	Selected lipgloss.Style
}

func newStyles(theme entity.Theme) styles {
	palette := theme.Palette()

	return styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.ContrastText)).
			Background(lipgloss.Color(palette.Dark)).
			Bold(true).
			Padding(0, 1),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(palette.Dark)).
			Background(lipgloss.Color(palette.Main)).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Background(lipgloss.Color(palette.Main)).
			Padding(0, 1),
		Winning: lipgloss.NewStyle().
			Background(lipgloss.Color(palette.Light)).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Dark)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Dark)).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.ContrastText)).
			Background(lipgloss.Color(palette.Main)).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.ContrastText)).
			Background(lipgloss.Color(palette.Main)).
			Bold(true).
			Padding(0, 1),
	}
}

func optionStyle(theme entity.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Palette().Main)).
		Padding(0, 1)
}
