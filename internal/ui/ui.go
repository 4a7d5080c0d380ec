// Package ui provides the live pool dashboard for the watch command. Logs
// emitted while the dashboard runs are redirected into its log pane, so the
// alternate screen stays intact.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/lmittmann/tint"
)

type poolProvider interface {
	All(ctx context.Context) ([]zpool.Pool, error)
	ReadPropertiesUnchecked(ctx context.Context, name string) (zpool.Properties, error)
}

// Handler owns the dashboard's bubbletea program.
type Handler struct {
	pools    poolProvider
	interval time.Duration
	program  *tea.Program
}

// NewHandler returns a dashboard refreshing at the given interval.
func NewHandler(pools poolProvider, interval time.Duration) *Handler {
	return &Handler{
		pools:    pools,
		interval: interval,
	}
}

// Launch runs the dashboard until quit or context cancellation, blocking the
// caller. The default slog handler is swapped to write into the dashboard
// for the duration; restoring it afterwards is the caller's responsibility.
func (uiHandler *Handler) Launch(ctx context.Context, cancel context.CancelFunc) error {
	model := NewTeaModel(uiHandler.pools, uiHandler.interval, cancel)

	uiHandler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	logWriter := newTeaLogWriter(uiHandler.program)
	defer logWriter.Stop()

	slog.SetDefault(slog.New(
		tint.NewHandler(logWriter, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))

	if _, err := uiHandler.program.Run(); err != nil {
		return fmt.Errorf("(ui-tea) %w", err)
	}

	return nil
}

// Stop kills the running program, if any.
func (uiHandler *Handler) Stop() {
	if uiHandler.program != nil {
		uiHandler.program.Kill()
	}
}
