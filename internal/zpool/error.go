// Package zpool implements the pool-level control plane: a typed error
// taxonomy with a classifier for zpool(8) diagnostics, the guarded operation
// contract over a pluggable backend, the property model and the minimal
// diff-and-set property update algorithm.
package zpool

import "fmt"

// ErrorKind identifies the category of a pool operation failure. Unlike the
// full [Error], a kind is always comparable, so callers and tests can branch
// on it without inspecting payloads (a wrapped I/O cause is not comparable).
type ErrorKind int

const (
	// KindCmdNotFound means the zpool executable was not found in PATH.
	KindCmdNotFound ErrorKind = iota

	// KindIO is any other I/O failure while launching or talking to the
	// backend; the causing error is retained on the [Error].
	KindIO

	// KindPoolNotFound means an operation targeted a pool that does not
	// exist according to the existence guard.
	KindPoolNotFound

	// KindInvalidTopology means the requested topology failed structural
	// validation before create was attempted.
	KindInvalidTopology

	// KindVdevReuse means one or more requested vdevs already belong to an
	// active pool.
	KindVdevReuse

	// KindParse means backend output could not be decoded into the expected
	// shape. Seeing this kind is a bug in the parser, not in the caller.
	KindParse

	// KindDeviceTooSmall means a device in the topology is smaller than the
	// minimum size the tool accepts.
	KindDeviceTooSmall

	// KindPermissionDenied means the tool refused the operation for lack of
	// privileges (not root, or a jail without zfs rights).
	KindPermissionDenied

	// KindUnclassified is diagnostic output no pattern matched; the full
	// text is retained on the [Error].
	KindUnclassified
)

func (k ErrorKind) String() string {
	switch k {
	case KindCmdNotFound:
		return "command not found"
	case KindIO:
		return "io failure"
	case KindPoolNotFound:
		return "pool not found"
	case KindInvalidTopology:
		return "invalid topology"
	case KindVdevReuse:
		return "vdev reuse"
	case KindParse:
		return "parse failure"
	case KindDeviceTooSmall:
		return "device too small"
	case KindPermissionDenied:
		return "permission denied"
	case KindUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Error is a pool operation failure: one kind from the closed set, plus the
// payload that kind carries (a causing error, a vdev/pool pair, or the raw
// diagnostic text). Errors are immutable once created.
type Error struct {
	kind  ErrorKind
	msg   string
	vdev  string
	pool  string
	cause error
}

//nolint:gochecknoglobals
var (
	// ErrCmdNotFound occurs when the zpool executable is not in PATH.
	ErrCmdNotFound = &Error{kind: KindCmdNotFound, msg: "zpool executable not found in path"}

	// ErrPoolNotFound occurs when manipulating a non-existent pool.
	ErrPoolNotFound = &Error{kind: KindPoolNotFound, msg: "no such pool"}

	// ErrInvalidTopology occurs when a topology fails structural validation.
	ErrInvalidTopology = &Error{kind: KindInvalidTopology, msg: "topology failed validation"}

	// ErrDeviceTooSmall occurs when a vdev is smaller than the minimum size.
	ErrDeviceTooSmall = &Error{kind: KindDeviceTooSmall, msg: "one or more devices is less than the minimum size"}

	// ErrPermissionDenied occurs when the tool refuses for lack of privileges.
	ErrPermissionDenied = &Error{kind: KindPermissionDenied, msg: "permission denied"}
)

// NewIOError wraps a generic I/O failure into the taxonomy, retaining the
// cause for [errors.Unwrap].
func NewIOError(cause error) *Error {
	return &Error{kind: KindIO, msg: "io failure", cause: cause}
}

// NewVdevReuseError reports a vdev that already belongs to an active pool.
// Both fields may be empty when the tool's message format does not expose
// them (observed on some ZoL systems); the gap is preserved, never guessed.
func NewVdevReuseError(vdev string, pool string) *Error {
	return &Error{kind: KindVdevReuse, vdev: vdev, pool: pool}
}

// NewParseError reports backend output that could not be decoded.
func NewParseError(cause error) *Error {
	return &Error{kind: KindParse, msg: "failed to parse backend output", cause: cause}
}

// NewUnclassifiedError retains diagnostic text no pattern matched.
func NewUnclassifiedError(msg string) *Error {
	return &Error{kind: KindUnclassified, msg: msg}
}

// Kind returns the comparable category of the error.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Vdev returns the offending vdev path of a [KindVdevReuse] error, empty
// otherwise (and empty for the degraded ZoL message variant).
func (e *Error) Vdev() string {
	return e.vdev
}

// Pool returns the owning pool of a [KindVdevReuse] error, empty otherwise.
func (e *Error) Pool() string {
	return e.pool
}

// Message returns the retained diagnostic text of a [KindUnclassified] error.
func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Error() string {
	switch e.kind {
	case KindVdevReuse:
		return fmt.Sprintf("%s is part of active pool '%s'", e.vdev, e.pool)
	case KindIO, KindParse:
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.msg, e.cause)
		}

		return e.msg
	default:
		return e.msg
	}
}

// Unwrap exposes the causing error of [KindIO] and [KindParse] failures.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on kind only, so errors.Is(err, ErrPoolNotFound) holds for any
// pool-not-found failure regardless of payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind == e.kind
}
