package view

import (
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Game is the game state as clients render it.
type Game struct {
	entity.GameState

	Status      entity.Status     `json:"status"`
	Message     string            `json:"message"`
	ResetLabel  string            `json:"resetLabel"`
	WinningLine []entity.Position `json:"winningLine,omitempty"`
}

func NewGame(state entity.GameState) Game {
	game := Game{
		GameState:  state,
		Status:     state.Status(),
		Message:    state.StatusMessage(),
		ResetLabel: state.ResetLabel(),
	}

	if line, ok := connectfour.WinningLine(state.Board); ok {
		game.WinningLine = line
	}

	return game
}

// ThemeOption is one entry of the theme picker.
type ThemeOption struct {
	Value entity.Theme `json:"value"`
	entity.Palette
}

type Theme struct {
	Theme   entity.Theme   `json:"theme"`
	Palette entity.Palette `json:"palette"`
	Themes  []ThemeOption  `json:"themes"`
}

func NewTheme(current entity.Theme) Theme {
	themes := entity.Themes()
	options := make([]ThemeOption, 0, len(themes))
	for _, theme := range themes {
		options = append(options, ThemeOption{Value: theme, Palette: theme.Palette()})
	}

	return Theme{
		Theme:   current,
		Palette: current.Palette(),
		Themes:  options,
	}
}
