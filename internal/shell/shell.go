// Package shell runs external commands and captures their full output. It is
// the lowest execution layer; callers interpret exit codes and diagnostics.
package shell

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

// ErrTimeout occurs when a command exceeds the runner's per-call timeout.
var ErrTimeout = errors.New("command timed out")

// Result is the captured outcome of a finished command. Code is -1 when the
// process never ran or was killed before exiting on its own.
type Result struct {
	Stdout []byte
	Stderr []byte
	Code   int
}

// Runner executes commands with a fixed per-call timeout. A zero timeout
// means no limit beyond the passed context. A Runner is immutable after
// construction and safe for concurrent use.
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewRunner returns a runner with the given per-call timeout. A nil logger
// falls back to [slog.Default].
func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		timeout: timeout,
		logger:  logger,
	}
}

// Run executes name with args, blocking until it finishes, the context is
// cancelled or the timeout elapses. The returned error is the raw launch or
// wait failure; exit-status interpretation is left to the caller, which has
// both the [Result] and the error.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cctx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("Executing command.", "command", name, "args", args)

	cmd := exec.CommandContext(cctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()

	result := Result{
		Stdout: outBuf.Bytes(),
		Stderr: errBuf.Bytes(),
		Code:   exitCode(err),
	}

	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return result, ErrTimeout
	}

	return result, err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
