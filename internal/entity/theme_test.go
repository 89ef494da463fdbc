package entity

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	t.Run("Known themes", func(t *testing.T) {
		for _, value := range []string{"default", "purple", "green"} {
			theme, err := ParseTheme(value)

			require.NoError(t, err)
			assert.Equal(t, Theme(value), theme)
		}
	})

	t.Run("Unknown theme", func(t *testing.T) {
		// When: parsing a theme that does not exist
		_, err := ParseTheme("orange")

		// Then: an ErrInvalidTheme error should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidTheme)
	})
}

func TestTheme_Palette(t *testing.T) {
	t.Run("Default theme is blue", func(t *testing.T) {
		palette := ThemeDefault.Palette()

		assert.Equal(t, "Blue", palette.Label)
		assert.Equal(t, "#42a5f5", palette.Main)
	})

	t.Run("Unknown theme falls back to default palette", func(t *testing.T) {
		assert.Equal(t, ThemeDefault.Palette(), Theme("orange").Palette())
	})
}

func TestTheme_Next(t *testing.T) {
	assert.Equal(t, ThemePurple, ThemeDefault.Next())
	assert.Equal(t, ThemeGreen, ThemePurple.Next())
	assert.Equal(t, ThemeDefault, ThemeGreen.Next())
	assert.Equal(t, ThemeDefault, Theme("orange").Next())
}
