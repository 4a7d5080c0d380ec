package zpool

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockBackend is a testify mock of [Backend] for exercising the guarded
// operation layer without a real execution backend.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}

func (m *mockBackend) CreateUnchecked(ctx context.Context, name string, topology Topology, props *PropertiesWrite, mount string, altRoot string) error {
	args := m.Called(ctx, name, topology, props, mount, altRoot)

	return args.Error(0)
}

func (m *mockBackend) DestroyUnchecked(ctx context.Context, name string, force bool) error {
	args := m.Called(ctx, name, force)

	return args.Error(0)
}

func (m *mockBackend) ReadPropertiesUnchecked(ctx context.Context, name string) (Properties, error) {
	args := m.Called(ctx, name)

	return args.Get(0).(Properties), args.Error(1)
}

func (m *mockBackend) SetUnchecked(ctx context.Context, name string, key string, value string) error {
	args := m.Called(ctx, name, key, value)

	return args.Error(0)
}

func (m *mockBackend) ExportUnchecked(ctx context.Context, name string, force bool) error {
	args := m.Called(ctx, name, force)

	return args.Error(0)
}

func (m *mockBackend) StatusUnchecked(ctx context.Context, name string) (Pool, error) {
	args := m.Called(ctx, name)

	return args.Get(0).(Pool), args.Error(1)
}

func (m *mockBackend) Available(ctx context.Context) ([]Pool, error) {
	args := m.Called(ctx)

	return args.Get(0).([]Pool), args.Error(1)
}

func (m *mockBackend) AvailableInDir(ctx context.Context, dir string) ([]Pool, error) {
	args := m.Called(ctx, dir)

	return args.Get(0).([]Pool), args.Error(1)
}

func (m *mockBackend) ImportFromDir(ctx context.Context, name string, dir string) error {
	args := m.Called(ctx, name, dir)

	return args.Error(0)
}

func (m *mockBackend) All(ctx context.Context) ([]Pool, error) {
	args := m.Called(ctx)

	return args.Get(0).([]Pool), args.Error(1)
}
