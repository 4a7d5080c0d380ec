package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/zpctl/internal/zpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPools struct {
	pools []zpool.Pool
	props map[string]zpool.Properties
}

func (s *stubPools) All(_ context.Context) ([]zpool.Pool, error) {
	return s.pools, nil
}

func (s *stubPools) ReadPropertiesUnchecked(_ context.Context, name string) (zpool.Properties, error) {
	return s.props[name], nil
}

func testModel(t *testing.T) TeaModel {
	t.Helper()

	pools := &stubPools{
		pools: []zpool.Pool{{Name: "tank", Health: zpool.HealthOnline}},
		props: map[string]zpool.Properties{
			"tank": {Size: 64 << 20, Alloc: 16 << 20, Free: 48 << 20, Capacity: 25},
		},
	}

	_, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	return NewTeaModel(pools, time.Second, cancel)
}

// TestTeaModelView_Success tests rendering of the refreshed dashboard.
func TestTeaModelView_Success(t *testing.T) {
	t.Parallel()

	model := testModel(t)

	assert.Contains(t, model.View(), "Loading the GUI...", "the view should show a placeholder before sizing")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sized, ok := updated.(TeaModel)
	require.True(t, ok, "Update() should return the concrete model")

	refreshed, _ := sized.Update(refreshPools(sized.pools)())
	ready, ok := refreshed.(TeaModel)
	require.True(t, ok)

	view := ready.View()
	assert.Contains(t, view, "tank", "the pool table should list the active pool")
	assert.Contains(t, view, "ONLINE", "the pool table should show the pool health")
	assert.Contains(t, view, "Active Pools", "the header should be rendered")
}

// TestTeaModelLogs_Success tests the log pane tail.
func TestTeaModelLogs_Success(t *testing.T) {
	t.Parallel()

	model := testModel(t)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sized, ok := updated.(TeaModel)
	require.True(t, ok)

	logged, _ := sized.Update(logMsg("pool tank exported\n"))
	withLogs, ok := logged.(TeaModel)
	require.True(t, ok)

	assert.Contains(t, withLogs.View(), "pool tank exported", "the log pane should show forwarded log lines")
}

// TestTeaModelQuit_Success tests the quit key.
func TestTeaModelQuit_Success(t *testing.T) {
	t.Parallel()

	model := testModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd, "pressing q should produce a command")
	assert.Equal(t, tea.Quit(), cmd(), "pressing q should quit the program")
}
