package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteThemeRepository(t *testing.T) ThemeRepository {
	t.Helper()

	ctx := context.Background()

	db, err := storage.NewSQLiteStorage(ctx, filepath.Join(t.TempDir(), "theme.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, db.Init(ctx))

	return NewSQLiteThemeRepository(db.Connection)
}

func TestSQLiteThemeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Get_NotFound", func(t *testing.T) {
		themeRepo := newSQLiteThemeRepository(t)

		// When: Get is called on an empty table
		_, err := themeRepo.Get(ctx)

		// Then: an ErrThemeNotFound error should be returned
		require.ErrorIs(t, err, ErrThemeNotFound)
	})

	t.Run("Save_and_Get", func(t *testing.T) {
		themeRepo := newSQLiteThemeRepository(t)

		// Given: a saved theme
		require.NoError(t, themeRepo.Save(ctx, entity.ThemePurple))

		// When: Get is called
		theme, err := themeRepo.Get(ctx)

		// Then: the saved theme should be returned
		require.NoError(t, err)
		assert.Equal(t, entity.ThemePurple, theme)
	})

	t.Run("Save_Upsert", func(t *testing.T) {
		themeRepo := newSQLiteThemeRepository(t)

		// Given: the theme changed twice
		require.NoError(t, themeRepo.Save(ctx, entity.ThemePurple))
		require.NoError(t, themeRepo.Save(ctx, entity.ThemeGreen))

		// When: Get is called
		theme, err := themeRepo.Get(ctx)

		// Then: only the last value is kept
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeGreen, theme)
	})
}
