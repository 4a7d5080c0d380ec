// Package zpoolcli implements the pool execution backend on top of the
// external zpool(8) tool: it renders command lines, runs them through the
// shell runner and turns raw output back into the control plane's types.
// Precondition checks live one layer up, in the zpool package's Handler.
package zpoolcli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/desertwitch/zpctl/internal/shell"
	"github.com/desertwitch/zpctl/internal/zpool"
)

// DefaultCmd is the tool invoked when no override is configured.
const DefaultCmd = "zpool"

type runnerProvider interface {
	Run(ctx context.Context, name string, args ...string) (shell.Result, error)
}

// Handler invokes zpool(8) as a subprocess and satisfies [zpool.Backend].
// It is immutable after construction; the attached logger is read-only and
// the handler is safe for concurrent use.
type Handler struct {
	runner runnerProvider
	cmd    string
	logger *slog.Logger
}

// NewHandler returns a subprocess backend using the given runner. An empty
// cmd falls back to [DefaultCmd]; a nil logger falls back to [slog.Default].
func NewHandler(runner runnerProvider, cmd string, logger *slog.Logger) *Handler {
	if cmd == "" {
		cmd = DefaultCmd
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		runner: runner,
		cmd:    cmd,
		logger: logger,
	}
}

// run executes the tool and translates launch failures into the typed
// taxonomy. A process that ran but exited non-zero comes back with a nil
// error; interpreting its diagnostics is the caller's job, since only the
// caller knows whether a non-zero exit is a failure at all.
func (h *Handler) run(ctx context.Context, args ...string) (shell.Result, error) {
	result, err := h.runner.Run(ctx, h.cmd, args...)
	if err != nil && result.Code < 0 {
		return result, zpool.TranslateIO(err)
	}

	h.logger.Debug("Tool invocation finished.", "cmd", h.cmd, "args", args, "code", result.Code)

	return result, nil
}

// Exists reports whether the named pool is active. A non-zero exit of the
// list query means absence, never an error.
func (h *Handler) Exists(ctx context.Context, name string) (bool, error) {
	result, err := h.run(ctx, "list", "-H", "-o", "name", name)
	if err != nil {
		return false, err
	}

	return result.Code == 0, nil
}

// CreateUnchecked creates a pool without validating the topology.
func (h *Handler) CreateUnchecked(ctx context.Context, name string, topology zpool.Topology, props *zpool.PropertiesWrite, mount string, altRoot string) error {
	args := []string{"create"}

	if mount != "" {
		args = append(args, "-m", mount)
	}
	if altRoot != "" {
		args = append(args, "-R", altRoot)
	}
	if props != nil {
		args = append(args, props.CreateArgs()...)
	}

	args = append(args, name)
	args = append(args, topology.CreateArgs()...)

	result, err := h.run(ctx, args...)
	if err != nil {
		return err
	}
	if result.Code != 0 {
		return zpool.Classify(result.Stderr)
	}

	return nil
}

// DestroyUnchecked destroys a pool without verifying it exists.
func (h *Handler) DestroyUnchecked(ctx context.Context, name string, force bool) error {
	args := []string{"destroy"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, name)

	result, err := h.run(ctx, args...)
	if err != nil {
		return err
	}
	if result.Code != 0 {
		return zpool.Classify(result.Stderr)
	}

	return nil
}

// ReadPropertiesUnchecked reads a fresh property snapshot.
func (h *Handler) ReadPropertiesUnchecked(ctx context.Context, name string) (zpool.Properties, error) {
	result, err := h.run(ctx, "get", "-Hp", "all", name)
	if err != nil {
		return zpool.Properties{}, err
	}
	if result.Code != 0 {
		return zpool.Properties{}, zpool.Classify(result.Stderr)
	}

	return parseProperties(result.Stdout)
}

// SetUnchecked sets a single property to an already-encoded value.
func (h *Handler) SetUnchecked(ctx context.Context, name string, key string, value string) error {
	result, err := h.run(ctx, "set", key+"="+value, name)
	if err != nil {
		return err
	}
	if result.Code != 0 {
		return zpool.Classify(result.Stderr)
	}

	return nil
}

// ExportUnchecked exports a pool without verifying it exists.
func (h *Handler) ExportUnchecked(ctx context.Context, name string, force bool) error {
	args := []string{"export"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, name)

	result, err := h.run(ctx, args...)
	if err != nil {
		return err
	}
	if result.Code != 0 {
		return zpool.Classify(result.Stderr)
	}

	return nil
}

// StatusUnchecked reads the status of a single pool.
func (h *Handler) StatusUnchecked(ctx context.Context, name string) (zpool.Pool, error) {
	result, err := h.run(ctx, "status", name)
	if err != nil {
		return zpool.Pool{}, err
	}
	if result.Code != 0 {
		return zpool.Pool{}, zpool.Classify(result.Stderr)
	}

	return parseStatus(result.Stdout)
}

// Available lists pools importable from the default device directory.
func (h *Handler) Available(ctx context.Context) ([]zpool.Pool, error) {
	return h.availableArgs(ctx, "import")
}

// AvailableInDir lists pools importable from dir.
func (h *Handler) AvailableInDir(ctx context.Context, dir string) ([]zpool.Pool, error) {
	return h.availableArgs(ctx, "import", "-d", dir)
}

// availableArgs runs an import listing. The tool exits non-zero when nothing
// is importable, which is an empty result here, not a failure.
func (h *Handler) availableArgs(ctx context.Context, args ...string) ([]zpool.Pool, error) {
	result, err := h.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if result.Code != 0 {
		if strings.Contains(string(result.Stderr), "no pools available to import") {
			return nil, nil
		}

		return nil, zpool.Classify(result.Stderr)
	}

	return parseImportList(result.Stdout)
}

// ImportFromDir imports the named pool from dir.
func (h *Handler) ImportFromDir(ctx context.Context, name string, dir string) error {
	result, err := h.run(ctx, "import", "-d", dir, name)
	if err != nil {
		return err
	}
	if result.Code != 0 {
		return zpool.Classify(result.Stderr)
	}

	return nil
}

// All lists the pools currently active on the system.
func (h *Handler) All(ctx context.Context) ([]zpool.Pool, error) {
	result, err := h.run(ctx, "list", "-Hp", "-o", "name,health")
	if err != nil {
		return nil, err
	}
	if result.Code != 0 {
		if strings.Contains(string(result.Stderr), "no pools available") {
			return nil, nil
		}

		return nil, zpool.Classify(result.Stderr)
	}

	return parseList(result.Stdout)
}
