package commands

import (
	"log/slog"

	"github.com/desertwitch/zpctl/internal/configuration"
	"github.com/desertwitch/zpctl/internal/shell"
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/desertwitch/zpctl/internal/zpoolcli"
)

// app bundles the wired-up handlers a subcommand needs.
type app struct {
	settings configuration.Settings
	pools    *zpool.Handler
}

// newApp loads the configuration and wires runner, subprocess backend and
// guarded operation layer. Flag overrides win over the configuration file.
func newApp() (*app, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := configHandler.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmdPath != "" {
		settings.Cmd = cmdPath
	}

	runner := shell.NewRunner(settings.Timeout, slog.Default())
	backend := zpoolcli.NewHandler(runner, settings.Cmd, slog.Default())

	return &app{
		settings: settings,
		pools:    zpool.NewHandler(backend),
	}, nil
}
