package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
	server *http.Server
}

// New builds the HTTP API. Extra handlers, like the WebSocket endpoint, are mounted
// with Mount before Start.
func New(logger *slog.Logger, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/ping", handlers.Ping)

	api := e.Group("/api")
	api.GET("/game", handlers.GetGame)
	api.POST("/game/move", handlers.MakeTurn)
	api.POST("/game/reset", handlers.ResetGame)
	api.GET("/theme", handlers.GetTheme)
	api.PUT("/theme", handlers.SelectTheme)

	return &Server{
		logger: logger.With("component", "http"),
		echo:   e,
		server: &http.Server{
			Handler:      e,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

func (that *Server) Mount(path string, handler http.Handler) {
	that.echo.GET(path, echo.WrapHandler(handler))
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start serves until Shutdown is called.
func (that *Server) Start(port string) error {
	that.server.Addr = ":" + port

	if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections and waits for active requests, at most shutdownTimeout.
func (that *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := that.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	that.logger.Debug("server stopped")

	return nil
}
