package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type memoryTheme struct {
	mu    sync.RWMutex
	theme entity.Theme
	saved bool
}

// NewMemoryThemeRepository keeps the preference in process memory only.
func NewMemoryThemeRepository() ThemeRepository {
	return &memoryTheme{}
}

func (that *memoryTheme) Get(_ context.Context) (entity.Theme, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if !that.saved {
		return "", ErrThemeNotFound
	}

	return that.theme, nil
}

func (that *memoryTheme) Save(_ context.Context, theme entity.Theme) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.theme = theme
	that.saved = true

	return nil
}
