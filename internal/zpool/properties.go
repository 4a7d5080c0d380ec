package zpool

import "strings"

// Health is the reported state of a pool or vdev.
type Health int

const (
	HealthUnknown Health = iota
	HealthOnline
	HealthDegraded
	HealthFaulted
	HealthOffline
	HealthRemoved
	HealthUnavailable
)

func (h Health) String() string {
	switch h {
	case HealthOnline:
		return "ONLINE"
	case HealthDegraded:
		return "DEGRADED"
	case HealthFaulted:
		return "FAULTED"
	case HealthOffline:
		return "OFFLINE"
	case HealthRemoved:
		return "REMOVED"
	case HealthUnavailable:
		return "UNAVAIL"
	default:
		return "UNKNOWN"
	}
}

// ParseHealth maps the tool's state strings onto [Health]. Unknown strings
// map to [HealthUnknown] (an ok: false result), never to an error.
func ParseHealth(s string) (Health, bool) {
	switch strings.TrimSpace(s) {
	case "ONLINE":
		return HealthOnline, true
	case "DEGRADED":
		return HealthDegraded, true
	case "FAULTED":
		return HealthFaulted, true
	case "OFFLINE":
		return HealthOffline, true
	case "REMOVED":
		return HealthRemoved, true
	case "UNAVAIL":
		return HealthUnavailable, true
	default:
		return HealthUnknown, false
	}
}

// FailMode controls pool behavior on catastrophic failure.
type FailMode int

const (
	FailModeWait FailMode = iota
	FailModeContinue
	FailModePanic
)

func (f FailMode) String() string {
	switch f {
	case FailModeContinue:
		return "continue"
	case FailModePanic:
		return "panic"
	default:
		return "wait"
	}
}

// ParseFailMode maps the tool's failmode values onto [FailMode].
func ParseFailMode(s string) (FailMode, bool) {
	switch strings.TrimSpace(s) {
	case "wait":
		return FailModeWait, true
	case "continue":
		return FailModeContinue, true
	case "panic":
		return FailModePanic, true
	default:
		return FailModeWait, false
	}
}

// Properties is an immutable snapshot of a pool's attributes as read from the
// backend. A fresh snapshot is produced on every read; it is never mutated in
// place. An unset comment or cache file is represented as the empty string
// (the tool prints "-" for unset values).
type Properties struct {
	Size          uint64
	Alloc         uint64
	Free          uint64
	Freeing       uint64
	ExpandSize    uint64
	Capacity      uint64
	Fragmentation uint64
	DedupRatio    float64
	GUID          uint64
	Health        Health
	ReadOnly      bool

	// Settable through [PropertiesWrite].
	AutoExpand  bool
	AutoReplace bool
	CacheFile   string
	Comment     string
	Delegation  bool
	FailMode    FailMode
}

// PropertiesWrite is a caller's desired state for the settable attributes of
// a pool. It is produced by [PropertiesWriteBuilder], consumed once by the
// update algorithm and discarded.
type PropertiesWrite struct {
	AutoExpand  bool
	AutoReplace bool
	CacheFile   string
	Comment     string
	Delegation  bool
	FailMode    FailMode
}

// CreateArgs renders the desired properties as -o key=value arguments for a
// create invocation.
func (w PropertiesWrite) CreateArgs() []string {
	args := []string{
		"-o", "autoexpand=" + boolValue(w.AutoExpand),
		"-o", "autoreplace=" + boolValue(w.AutoReplace),
		"-o", "delegation=" + boolValue(w.Delegation),
		"-o", "failmode=" + w.FailMode.String(),
	}

	if w.CacheFile != "" {
		args = append(args, "-o", "cachefile="+w.CacheFile)
	}
	if w.Comment != "" {
		args = append(args, "-o", "comment="+w.Comment)
	}

	return args
}

// boolValue encodes a boolean the way the tool expects property values.
func boolValue(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

// PropertiesWriteBuilder assembles a [PropertiesWrite], starting from the
// tool's own defaults. Every field is optional; unset fields keep their
// default and still participate in the update comparison.
type PropertiesWriteBuilder struct {
	write PropertiesWrite
}

// NewPropertiesWriteBuilder starts from the tool defaults: autoexpand off,
// autoreplace off, no cache file override, no comment, delegation on,
// failmode wait.
func NewPropertiesWriteBuilder() *PropertiesWriteBuilder {
	return &PropertiesWriteBuilder{
		write: PropertiesWrite{
			Delegation: true,
			FailMode:   FailModeWait,
		},
	}
}

// FromProperties seeds a builder with the settable attributes of a current
// snapshot, so an unmodified build produces zero update calls.
func FromProperties(current Properties) *PropertiesWriteBuilder {
	return &PropertiesWriteBuilder{
		write: PropertiesWrite{
			AutoExpand:  current.AutoExpand,
			AutoReplace: current.AutoReplace,
			CacheFile:   current.CacheFile,
			Comment:     current.Comment,
			Delegation:  current.Delegation,
			FailMode:    current.FailMode,
		},
	}
}

func (b *PropertiesWriteBuilder) AutoExpand(v bool) *PropertiesWriteBuilder {
	b.write.AutoExpand = v

	return b
}

func (b *PropertiesWriteBuilder) AutoReplace(v bool) *PropertiesWriteBuilder {
	b.write.AutoReplace = v

	return b
}

func (b *PropertiesWriteBuilder) CacheFile(v string) *PropertiesWriteBuilder {
	b.write.CacheFile = v

	return b
}

// Comment sets the desired pool comment. An empty comment means "no comment":
// the update algorithm treats it as clearing the attribute rather than
// setting an empty string.
func (b *PropertiesWriteBuilder) Comment(v string) *PropertiesWriteBuilder {
	b.write.Comment = v

	return b
}

func (b *PropertiesWriteBuilder) Delegation(v bool) *PropertiesWriteBuilder {
	b.write.Delegation = v

	return b
}

func (b *PropertiesWriteBuilder) FailMode(v FailMode) *PropertiesWriteBuilder {
	b.write.FailMode = v

	return b
}

func (b *PropertiesWriteBuilder) Build() PropertiesWrite {
	return b.write
}
