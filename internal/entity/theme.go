package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

// ThemeKey is the preference key the selected theme is stored under.
const ThemeKey = "connectFourTheme"

type Theme string

const (
	ThemeDefault Theme = "default"
	ThemePurple  Theme = "purple"
	ThemeGreen   Theme = "green"
)

// Palette is the set of colours a theme paints the board with.
type Palette struct {
	Label        string `json:"label"`
	Main         string `json:"main"`
	Light        string `json:"light"`
	Dark         string `json:"dark"`
	ContrastText string `json:"contrastText"`
}

var palettes = map[Theme]Palette{
	ThemeDefault: {
		Label:        "Blue",
		Main:         "#42a5f5",
		Light:        "#f5fbff",
		Dark:         "#1976d2",
		ContrastText: "#ffffff",
	},
	ThemePurple: {
		Label:        "Purple",
		Main:         "#ba68c8",
		Light:        "#faf2fb",
		Dark:         "#9c27b0",
		ContrastText: "#ffffff",
	},
	ThemeGreen: {
		Label:        "Green",
		Main:         "#81c784",
		Light:        "#f3fcf4",
		Dark:         "#4caf50",
		ContrastText: "#ffffff",
	},
}

// Themes lists the selectable themes in display order.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemePurple, ThemeGreen}
}

func ParseTheme(value string) (Theme, error) {
	theme := Theme(value)
	if !theme.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidTheme, value)
	}
	return theme, nil
}

func (that Theme) IsValid() bool {
	_, ok := palettes[that]
	return ok
}

// Palette returns the colours of the theme, falling back to the default one.
func (that Theme) Palette() Palette {
	if palette, ok := palettes[that]; ok {
		return palette
	}
	return palettes[ThemeDefault]
}

// Next returns the theme following this one in display order.
func (that Theme) Next() Theme {
	themes := Themes()
	for i, theme := range themes {
		if theme == that {
			return themes[(i+1)%len(themes)]
		}
	}
	return ThemeDefault
}
