package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/transport/view"
)

type Handlers interface {
	Ping(ctx echo.Context) error

	GetGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	ResetGame(ctx echo.Context) error

	GetTheme(ctx echo.Context) error
	SelectTheme(ctx echo.Context) error
}

type moveRequest struct {
	Column *int `json:"column"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger

	game  usecase.GameUseCase
	theme service.ThemeService
}

func NewHandlers(logger *slog.Logger, game usecase.GameUseCase, theme service.ThemeService) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
		theme:  theme,
	}
}

func (that *handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (that *handlers) GetGame(ctx echo.Context) error {
	state := that.game.GetGameState(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, view.NewGame(state))
}

func (that *handlers) MakeTurn(ctx echo.Context) error {
	log := that.logger.With("method", "MakeTurn")

	var req moveRequest
	if err := ctx.Bind(&req); err != nil || req.Column == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "column is required"})
	}

	state, err := that.game.MakeTurn(ctx.Request().Context(), *req.Column)
	if err != nil {
		log.Debug("move rejected", "column", *req.Column, "error", err)
		return ctx.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, view.NewGame(state))
}

func (that *handlers) ResetGame(ctx echo.Context) error {
	state := that.game.ResetGame(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, view.NewGame(state))
}

func (that *handlers) GetTheme(ctx echo.Context) error {
	log := that.logger.With("method", "GetTheme")

	theme, err := that.theme.Current(ctx.Request().Context())
	if err != nil {
		// the default theme is still usable
		log.Error("failed to read theme", "error", err)
	}

	return ctx.JSON(http.StatusOK, view.NewTheme(theme))
}

func (that *handlers) SelectTheme(ctx echo.Context) error {
	log := that.logger.With("method", "SelectTheme")

	var req themeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	theme, err := that.theme.Select(ctx.Request().Context(), req.Theme)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			log.Error("failed to save theme", "error", err)
		}
		return ctx.JSON(statusFor(err), errorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, view.NewTheme(theme))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrColumnFull), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidTheme):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
