package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/tui"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
	"github.com/rocketscienceinc/connectfour-backend/transport/websocket"
)

var (
	ErrAddrNotFound         = errors.New("redis address string is empty")
	ErrUnknownThemeStore    = errors.New("unknown theme store")
	ErrSQLitePathNotDefined = errors.New("sqlite storage path is empty")
)

// RunServer serves the HTTP API and the WebSocket stream until ctx is canceled.
func RunServer(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	themeRepo, closeStore, err := NewThemeRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close theme storage", "error", err)
		}
	}()

	table := usecase.NewTable(logger)
	themeService := service.NewThemeService(logger, themeRepo)

	httpServer := rest.New(logger, rest.NewHandlers(logger, table, themeService))
	httpServer.Mount("/ws", websocket.New(logger, table))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "theme-store", conf.ThemeStore)
		if httpErr := httpServer.Start(conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		log.Info("Shutting down HTTP server")
		return httpServer.Shutdown(context.WithoutCancel(groupCtx))
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunClient plays on the terminal against a local table.
func RunClient(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	themeRepo, closeStore, err := NewThemeRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStore(); err != nil {
			log.Error("could not close theme storage", "error", err)
		}
	}()

	table := usecase.NewTable(logger)
	themeService := service.NewThemeService(logger, themeRepo)

	return tui.Run(ctx, logger, table, themeService)
}

// NewThemeRepository opens the storage selected in the config. The returned func
// releases it.
func NewThemeRepository(ctx context.Context, conf *config.Config) (repository.ThemeRepository, func() error, error) {
	switch conf.ThemeStore {
	case config.ThemeStoreRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewThemeRepository(redisStorage.Connection), redisStorage.Close, nil

	case config.ThemeStoreSQLite:
		if conf.SQLiteStoragePath == "" {
			return nil, nil, ErrSQLitePathNotDefined
		}

		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteThemeRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.ThemeStoreMemory:
		return repository.NewMemoryThemeRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownThemeStore, conf.ThemeStore)
	}
}
