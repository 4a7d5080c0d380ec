package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/zpctl/cmd/zpctl/commands"
	"github.com/lmittmann/tint"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

//nolint:gochecknoglobals
var Version string

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	exitCode := exitSuccess

	defer func() {
		os.Exit(exitCode)
	}()

	setupLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := commands.Execute(ctx, Version); err != nil {
		exitCode = exitFailure
	}
}
