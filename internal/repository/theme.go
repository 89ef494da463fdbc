package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var ErrThemeNotFound = fmt.Errorf("theme preference %w", apperror.ErrNotFound)

// ThemeRepository stores the single theme preference. Get returns the raw stored
// value, validation is up to the caller.
type ThemeRepository interface {
	Get(ctx context.Context) (entity.Theme, error)
	Save(ctx context.Context, theme entity.Theme) error
}

type dbTheme struct {
	client *redis.Client
}

func NewThemeRepository(client *redis.Client) ThemeRepository {
	return &dbTheme{
		client: client,
	}
}

func (that *dbTheme) Get(ctx context.Context) (entity.Theme, error) {
	response, err := that.client.Get(ctx, entity.ThemeKey).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrThemeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	return entity.Theme(response), nil
}

func (that *dbTheme) Save(ctx context.Context, theme entity.Theme) error {
	err := that.client.Set(ctx, entity.ThemeKey, string(theme), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}
