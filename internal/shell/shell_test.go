package shell

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunnerRun_Success tests command execution and output capture.
func TestRunnerRun_Success(t *testing.T) {
	t.Parallel()

	runner := NewRunner(10*time.Second, nil)

	result, err := runner.Run(t.Context(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err, "Run() should not fail on a zero exit")

	assert.Equal(t, 0, result.Code, "Run() should report a zero exit code")
	assert.Equal(t, "out\n", string(result.Stdout), "Run() should capture stdout")
	assert.Equal(t, "err\n", string(result.Stderr), "Run() should capture stderr")
}

// TestRunnerRun_Fail tests exit-code recovery and launch failures.
func TestRunnerRun_Fail(t *testing.T) {
	t.Parallel()

	t.Run("Fail_NonZeroExit", func(t *testing.T) {
		t.Parallel()

		runner := NewRunner(10*time.Second, nil)

		result, err := runner.Run(t.Context(), "sh", "-c", "exit 3")
		require.Error(t, err, "Run() should surface a non-zero exit as an error")

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr, "a non-zero exit should be an exec.ExitError")
		assert.Equal(t, 3, result.Code, "Run() should recover the exit code")
	})

	t.Run("Fail_CommandNotFound", func(t *testing.T) {
		t.Parallel()

		runner := NewRunner(10*time.Second, nil)

		result, err := runner.Run(t.Context(), "zpctl-no-such-command-here")
		require.Error(t, err, "Run() should fail on a missing executable")
		assert.Equal(t, -1, result.Code, "a process that never ran should report -1")
	})

	t.Run("Fail_Timeout", func(t *testing.T) {
		t.Parallel()

		runner := NewRunner(50*time.Millisecond, nil)

		_, err := runner.Run(t.Context(), "sh", "-c", "sleep 5")
		require.ErrorIs(t, err, ErrTimeout, "Run() should report the timeout over the kill error")
	})
}
