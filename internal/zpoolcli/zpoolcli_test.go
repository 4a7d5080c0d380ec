package zpoolcli

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/desertwitch/zpctl/internal/shell"
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (shell.Result, error) {
	mockArgs := m.Called(ctx, name, args)

	return mockArgs.Get(0).(shell.Result), mockArgs.Error(1)
}

// TestHandlerExists tests existence queries through the tool.
func TestHandlerExists(t *testing.T) {
	t.Parallel()

	t.Run("Success_PoolActive", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"list", "-H", "-o", "name", "tank"}).
			Return(shell.Result{Stdout: []byte("tank\n"), Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		exists, err := handler.Exists(t.Context(), "tank")
		require.NoError(t, err, "Exists() should not fail on a zero exit")
		assert.True(t, exists, "a zero exit should mean the pool is active")

		runner.AssertExpectations(t)
	})

	t.Run("Success_PoolAbsent", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", mock.Anything).
			Return(shell.Result{Stderr: []byte("cannot open 'ghost': no such pool\n"), Code: 1},
				errors.New("exit status 1"))

		handler := NewHandler(runner, "", nil)

		exists, err := handler.Exists(t.Context(), "ghost")
		require.NoError(t, err, "Exists() should not fail on a non-zero exit")
		assert.False(t, exists, "a non-zero exit should mean absence, not an error")
	})

	t.Run("Fail_CmdNotFound", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool-not-found", mock.Anything).
			Return(shell.Result{Code: -1}, &exec.Error{Name: "zpool-not-found", Err: exec.ErrNotFound})

		handler := NewHandler(runner, "zpool-not-found", nil)

		_, err := handler.Exists(t.Context(), "tank")
		require.ErrorIs(t, err, zpool.ErrCmdNotFound, "a launch failure should translate to command not found")
	})
}

// TestHandlerCreateUnchecked tests argument rendering and diagnostics
// classification of create invocations.
func TestHandlerCreateUnchecked(t *testing.T) {
	t.Parallel()

	t.Run("Success_FullArguments", func(t *testing.T) {
		t.Parallel()

		topology := zpool.NewTopologyBuilder().
			Vdev(zpool.MirrorVdev(zpool.BlockDisk("/dev/sda"), zpool.BlockDisk("/dev/sdb"))).
			Build()

		props := zpool.NewPropertiesWriteBuilder().
			AutoExpand(true).
			Build()

		want := []string{
			"create",
			"-m", "/mnt/tank",
			"-R", "/alt",
			"-o", "autoexpand=on",
			"-o", "autoreplace=off",
			"-o", "delegation=on",
			"-o", "failmode=wait",
			"tank",
			"mirror", "/dev/sda", "/dev/sdb",
		}

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", want).
			Return(shell.Result{Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		err := handler.CreateUnchecked(t.Context(), "tank", topology, &props, "/mnt/tank", "/alt")
		require.NoError(t, err, "CreateUnchecked() should render the full argument list")

		runner.AssertExpectations(t)
	})

	t.Run("Fail_VdevReuseClassified", func(t *testing.T) {
		t.Parallel()

		stderr := []byte("invalid vdev specification\nuse '-f' to override the following errors:\n/vdevs/vdev0 is part of active pool 'tank'")

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", mock.Anything).
			Return(shell.Result{Stderr: stderr, Code: 1}, errors.New("exit status 1"))

		handler := NewHandler(runner, "", nil)

		topology := zpool.NewTopologyBuilder().
			Disk(zpool.FileDisk("/vdevs/vdev0")).
			Build()

		err := handler.CreateUnchecked(t.Context(), "other", topology, nil, "", "")
		require.Error(t, err, "CreateUnchecked() should classify a non-zero exit")

		var zerr *zpool.Error
		require.ErrorAs(t, err, &zerr)
		assert.Equal(t, zpool.KindVdevReuse, zerr.Kind(), "the diagnostic should classify as vdev reuse")
		assert.Equal(t, "/vdevs/vdev0", zerr.Vdev())
		assert.Equal(t, "tank", zerr.Pool())
	})
}

// TestHandlerDestroyExport tests flag rendering of destroy and export.
func TestHandlerDestroyExport(t *testing.T) {
	t.Parallel()

	t.Run("Success_DestroyForced", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"destroy", "-f", "tank"}).
			Return(shell.Result{Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		require.NoError(t, handler.DestroyUnchecked(t.Context(), "tank", true))
		runner.AssertExpectations(t)
	})

	t.Run("Success_ExportUnforced", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"export", "tank"}).
			Return(shell.Result{Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		require.NoError(t, handler.ExportUnchecked(t.Context(), "tank", false))
		runner.AssertExpectations(t)
	})
}

// TestHandlerSetUnchecked tests the key=value rendering of set.
func TestHandlerSetUnchecked(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	runner.On("Run", mock.Anything, "zpool", []string{"set", "comment=production", "tank"}).
		Return(shell.Result{Code: 0}, nil)

	handler := NewHandler(runner, "", nil)

	require.NoError(t, handler.SetUnchecked(t.Context(), "tank", "comment", "production"))
	runner.AssertExpectations(t)
}

// TestHandlerAvailable tests import listings including the nothing-found exit.
func TestHandlerAvailable(t *testing.T) {
	t.Parallel()

	t.Run("Success_NothingToImport", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"import"}).
			Return(shell.Result{Stderr: []byte("no pools available to import\n"), Code: 1},
				errors.New("exit status 1"))

		handler := NewHandler(runner, "", nil)

		pools, err := handler.Available(t.Context())
		require.NoError(t, err, "a nothing-to-import exit should not be a failure")
		assert.Empty(t, pools)
	})

	t.Run("Success_InDir", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"import", "-d", "/vdevs"}).
			Return(shell.Result{Stdout: []byte(importListFixture), Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		pools, err := handler.AvailableInDir(t.Context(), "/vdevs")
		require.NoError(t, err)
		require.Len(t, pools, 2)
		assert.Equal(t, "tank", pools[0].Name)

		runner.AssertExpectations(t)
	})
}

// TestHandlerStatusAndAll tests the read-side listings end to end.
func TestHandlerStatusAndAll(t *testing.T) {
	t.Parallel()

	t.Run("Success_Status", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"status", "tank"}).
			Return(shell.Result{Stdout: []byte(statusFixture), Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		pool, err := handler.StatusUnchecked(t.Context(), "tank")
		require.NoError(t, err)
		assert.Equal(t, "tank", pool.Name)
		assert.Equal(t, zpool.HealthOnline, pool.Health)
	})

	t.Run("Success_All", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"list", "-Hp", "-o", "name,health"}).
			Return(shell.Result{Stdout: []byte("tank\tONLINE\n"), Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		pools, err := handler.All(t.Context())
		require.NoError(t, err)
		require.Len(t, pools, 1)
		assert.Equal(t, "tank", pools[0].Name)
	})

	t.Run("Success_ReadProperties", func(t *testing.T) {
		t.Parallel()

		runner := &mockRunner{}
		runner.On("Run", mock.Anything, "zpool", []string{"get", "-Hp", "all", "tank"}).
			Return(shell.Result{Stdout: []byte(getAllFixture), Code: 0}, nil)

		handler := NewHandler(runner, "", nil)

		props, err := handler.ReadPropertiesUnchecked(t.Context(), "tank")
		require.NoError(t, err)
		assert.Equal(t, uint64(67108864), props.Size)
		assert.True(t, props.AutoExpand)
	})
}
