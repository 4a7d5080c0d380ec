package zpool

// Pool describes a pool as reported by a status or import listing. For
// importable pools the ID is the tool-assigned numeric identifier; for active
// pools it is zero.
type Pool struct {
	Name   string
	ID     uint64
	Health Health

	// Action and Errors carry the tool's free-text advice and error summary
	// where the listing provides them, empty otherwise.
	Action string
	Errors string
}
