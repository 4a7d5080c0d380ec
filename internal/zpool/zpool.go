package zpool

import "context"

// Backend is the set of unchecked primitives a pool execution layer must
// provide. Primitives talk directly to the underlying tool or library and
// perform no precondition checks of their own; failures surface either as a
// typed [*Error] (classified diagnostics) or as a raw error the caller
// translates. The subprocess implementation lives in internal/zpoolcli; any
// other implementation (a native library binding, a test mock) plugs into
// the same [Handler].
type Backend interface {
	// Exists reports whether a pool with the given name is active. It never
	// fails with [ErrPoolNotFound]; absence is the false return.
	Exists(ctx context.Context, name string) (bool, error)

	// CreateUnchecked creates a pool without validating the topology.
	CreateUnchecked(ctx context.Context, name string, topology Topology, props *PropertiesWrite, mount string, altRoot string) error

	// DestroyUnchecked destroys a pool without verifying it exists.
	DestroyUnchecked(ctx context.Context, name string, force bool) error

	// ReadPropertiesUnchecked reads a fresh property snapshot.
	ReadPropertiesUnchecked(ctx context.Context, name string) (Properties, error)

	// SetUnchecked sets a single property to an already-encoded value.
	SetUnchecked(ctx context.Context, name string, key string, value string) error

	// ExportUnchecked exports a pool without verifying it exists.
	ExportUnchecked(ctx context.Context, name string, force bool) error

	// StatusUnchecked reads the status of a single pool.
	StatusUnchecked(ctx context.Context, name string) (Pool, error)

	// Available lists pools that could be imported from the default device
	// directory.
	Available(ctx context.Context) ([]Pool, error)

	// AvailableInDir lists pools that could be imported from dir.
	AvailableInDir(ctx context.Context, dir string) ([]Pool, error)

	// ImportFromDir imports the named pool from dir.
	ImportFromDir(ctx context.Context, name string, dir string) error

	// All lists the pools currently active on the system.
	All(ctx context.Context) ([]Pool, error)
}

// Handler layers precondition guards over a [Backend], keeping the guard
// logic in exactly one place. Mutating operations are paired with a cheap
// existence (or topology validity) check before delegating to the unchecked
// primitive; callers that already established the precondition can call the
// unchecked sibling directly and skip the redundant query.
//
// The guard is a convenience, not a correctness guarantee against races: a
// pool can vanish between the check and the delegated call through a
// concurrent actor outside this process. Callers needing exclusivity must
// serialize externally or treat [ErrPoolNotFound] and backend-reported
// conflicts as a normal outcome.
//
// A Handler holds no mutable state and is safe for concurrent use.
type Handler struct {
	backend Backend
}

// NewHandler wraps a backend with the guarded operation set.
func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

// Exists reports whether the named pool is active. Repeated calls against an
// unchanged backend are side-effect free and yield the same answer.
func (h *Handler) Exists(ctx context.Context, name string) (bool, error) {
	return h.backend.Exists(ctx, name)
}

// Create validates the topology structurally and creates the pool. Props,
// mount and altRoot are optional; pass nil or empty to take the tool
// defaults. Fails with [ErrInvalidTopology] before touching the backend when
// the topology cannot form a pool.
func (h *Handler) Create(ctx context.Context, name string, topology Topology, props *PropertiesWrite, mount string, altRoot string) error {
	if !topology.SuitableForCreate() {
		return ErrInvalidTopology
	}

	return h.backend.CreateUnchecked(ctx, name, topology, props, mount, altRoot)
}

// CreateUnchecked creates the pool without topology validation.
func (h *Handler) CreateUnchecked(ctx context.Context, name string, topology Topology, props *PropertiesWrite, mount string, altRoot string) error {
	return h.backend.CreateUnchecked(ctx, name, topology, props, mount, altRoot)
}

// Destroy destroys an existing pool; [ErrPoolNotFound] when the existence
// guard fails.
func (h *Handler) Destroy(ctx context.Context, name string, force bool) error {
	exists, err := h.backend.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPoolNotFound
	}

	return h.backend.DestroyUnchecked(ctx, name, force)
}

// DestroyUnchecked destroys the pool without the existence guard.
func (h *Handler) DestroyUnchecked(ctx context.Context, name string, force bool) error {
	return h.backend.DestroyUnchecked(ctx, name, force)
}

// ReadProperties reads a property snapshot of an existing pool.
func (h *Handler) ReadProperties(ctx context.Context, name string) (Properties, error) {
	exists, err := h.backend.Exists(ctx, name)
	if err != nil {
		return Properties{}, err
	}
	if !exists {
		return Properties{}, ErrPoolNotFound
	}

	return h.backend.ReadPropertiesUnchecked(ctx, name)
}

// ReadPropertiesUnchecked reads a snapshot without the existence guard.
func (h *Handler) ReadPropertiesUnchecked(ctx context.Context, name string) (Properties, error) {
	return h.backend.ReadPropertiesUnchecked(ctx, name)
}

// Export exports an existing pool; [ErrPoolNotFound] when the existence
// guard fails.
func (h *Handler) Export(ctx context.Context, name string, force bool) error {
	exists, err := h.backend.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPoolNotFound
	}

	return h.backend.ExportUnchecked(ctx, name, force)
}

// ExportUnchecked exports the pool without the existence guard.
func (h *Handler) ExportUnchecked(ctx context.Context, name string, force bool) error {
	return h.backend.ExportUnchecked(ctx, name, force)
}

// Status reads the status of an existing pool.
func (h *Handler) Status(ctx context.Context, name string) (Pool, error) {
	exists, err := h.backend.Exists(ctx, name)
	if err != nil {
		return Pool{}, err
	}
	if !exists {
		return Pool{}, ErrPoolNotFound
	}

	return h.backend.StatusUnchecked(ctx, name)
}

// StatusUnchecked reads the status without the existence guard.
func (h *Handler) StatusUnchecked(ctx context.Context, name string) (Pool, error) {
	return h.backend.StatusUnchecked(ctx, name)
}

// Available lists importable pools from the default device directory. No
// existence guard applies; the targets are by definition not active locally.
func (h *Handler) Available(ctx context.Context) ([]Pool, error) {
	return h.backend.Available(ctx)
}

// AvailableInDir lists importable pools whose devices live under dir.
func (h *Handler) AvailableInDir(ctx context.Context, dir string) ([]Pool, error) {
	return h.backend.AvailableInDir(ctx, dir)
}

// ImportFromDir imports the named pool from dir. No existence guard applies;
// the pool is not currently known to the system.
func (h *Handler) ImportFromDir(ctx context.Context, name string, dir string) error {
	return h.backend.ImportFromDir(ctx, name, dir)
}

// All lists the pools currently active on the system.
func (h *Handler) All(ctx context.Context) ([]Pool, error) {
	return h.backend.All(ctx)
}
