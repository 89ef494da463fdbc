package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
)

type ThemeService interface {
	// Current returns the stored theme. Missing or unknown values give the default theme.
	Current(ctx context.Context) (entity.Theme, error)
	// Select validates and stores the theme.
	Select(ctx context.Context, value string) (entity.Theme, error)
}

type themeRepo interface {
	Get(ctx context.Context) (entity.Theme, error)
	Save(ctx context.Context, theme entity.Theme) error
}

type themeService struct {
	logger    *slog.Logger
	themeRepo themeRepo
}

func NewThemeService(logger *slog.Logger, themeRepo themeRepo) ThemeService {
	return &themeService{
		logger:    logger.With("component", "theme"),
		themeRepo: themeRepo,
	}
}

func (that *themeService) Current(ctx context.Context) (entity.Theme, error) {
	theme, err := that.themeRepo.Get(ctx)
	if errors.Is(err, repository.ErrThemeNotFound) {
		return entity.ThemeDefault, nil
	}

	if err != nil {
		return entity.ThemeDefault, fmt.Errorf("get theme %w", err)
	}

	if !theme.IsValid() {
		that.logger.Warn("stored theme is unknown, using default", "theme", theme)
		return entity.ThemeDefault, nil
	}

	return theme, nil
}

func (that *themeService) Select(ctx context.Context, value string) (entity.Theme, error) {
	theme, err := entity.ParseTheme(value)
	if err != nil {
		return "", err
	}

	if err = that.themeRepo.Save(ctx, theme); err != nil {
		return "", fmt.Errorf("save theme %w", err)
	}

	that.logger.Debug("theme selected", "theme", theme)

	return theme, nil
}
