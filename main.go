package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	app "github.com/rocketscienceinc/connectfour-backend/internal"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" help:"Path to the config file; empty reads the environment only" default:"config.yml" type:"path"`

	Serve ServeCmd `cmd:"" default:"1" help:"Serve the HTTP API and WebSocket stream"`
	Play  PlayCmd  `cmd:"" help:"Play in the terminal"`
}

type ServeCmd struct{}

func (that *ServeCmd) Run(cli *CLI) error {
	conf, err := initConfig(cli.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := initLogger(conf, os.Stdout)

	if err = app.RunServer(ctx, logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

type PlayCmd struct {
	LogFile string `help:"Write logs to this file instead of discarding them" type:"path"`
}

func (that *PlayCmd) Run(cli *CLI) error {
	conf, err := initConfig(cli.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// the terminal belongs to the game, logs go elsewhere
	var out io.Writer = io.Discard
	if that.LogFile != "" {
		file, err := os.OpenFile(that.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		out = file
	}

	return app.RunClient(ctx, initLogger(conf, out), conf)
}

// main - is the entry point of the application. It parses the command line and runs the chosen command.
func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("connectfour"),
		kong.Description("4x4 Connect Four with a pluggable colour theme"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// initialize config. A missing default file is not an error.
func initConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		path = ""
	}

	return config.Load(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if conf.LogFormat == "text" {
		handler := charmlog.NewWithOptions(out, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
