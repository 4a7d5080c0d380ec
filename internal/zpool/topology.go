package zpool

// Topology is the full structural description of a pool's vdev layout. It is
// constructed by the caller, validated once per create request and not
// retained afterwards.
type Topology struct {
	Vdevs  []Vdev
	Caches []Disk
	Logs   []Vdev
}

// SuitableForCreate is the structural validity predicate consulted by the
// create guard: at least one data vdev, every data and log vdev individually
// valid, every cache disk with a non-empty path. It says nothing about the
// devices actually existing; that is the tool's call to make.
func (t Topology) SuitableForCreate() bool {
	if len(t.Vdevs) == 0 {
		return false
	}

	for _, v := range t.Vdevs {
		if !v.isValid() {
			return false
		}
	}

	for _, v := range t.Logs {
		if !v.isValid() {
			return false
		}
	}

	for _, c := range t.Caches {
		if c.Path == "" {
			return false
		}
	}

	return true
}

// CreateArgs renders the topology as the trailing vdev arguments of a create
// invocation: data vdevs first, then the log section, then the cache section.
func (t Topology) CreateArgs() []string {
	var args []string

	for _, v := range t.Vdevs {
		args = append(args, v.createArgs()...)
	}

	if len(t.Logs) > 0 {
		args = append(args, "log")
		for _, v := range t.Logs {
			args = append(args, v.createArgs()...)
		}
	}

	if len(t.Caches) > 0 {
		args = append(args, "cache")
		for _, c := range t.Caches {
			args = append(args, c.Path)
		}
	}

	return args
}

// TopologyBuilder assembles a [Topology] incrementally. Building performs no
// validation; [Topology.SuitableForCreate] is the single validity gate.
type TopologyBuilder struct {
	topology Topology
}

func NewTopologyBuilder() *TopologyBuilder {
	return &TopologyBuilder{}
}

// Vdev appends a data vdev.
func (b *TopologyBuilder) Vdev(v Vdev) *TopologyBuilder {
	b.topology.Vdevs = append(b.topology.Vdevs, v)

	return b
}

// Disk appends a single disk as a redundancy-free data vdev.
func (b *TopologyBuilder) Disk(d Disk) *TopologyBuilder {
	return b.Vdev(NakedVdev(d))
}

// Cache appends a cache device.
func (b *TopologyBuilder) Cache(d Disk) *TopologyBuilder {
	b.topology.Caches = append(b.topology.Caches, d)

	return b
}

// Log appends an intent-log vdev.
func (b *TopologyBuilder) Log(v Vdev) *TopologyBuilder {
	b.topology.Logs = append(b.topology.Logs, v)

	return b
}

func (b *TopologyBuilder) Build() Topology {
	return b.topology
}
