package zpool

import "golang.org/x/sys/unix"

// DiskKind distinguishes the two backing stores a vdev member can have.
type DiskKind int

const (
	// DiskFile is a regular file used as a vdev (mostly for testing setups).
	DiskFile DiskKind = iota

	// DiskBlock is a block device, typically under /dev.
	DiskBlock
)

func (k DiskKind) String() string {
	if k == DiskBlock {
		return "disk"
	}

	return "file"
}

// Disk is a single vdev member: a path plus what the path points at.
type Disk struct {
	Kind DiskKind
	Path string
}

// FileDisk declares a regular file at path as a vdev member.
func FileDisk(path string) Disk {
	return Disk{Kind: DiskFile, Path: path}
}

// BlockDisk declares a block device at path as a vdev member.
func BlockDisk(path string) Disk {
	return Disk{Kind: DiskBlock, Path: path}
}

// DetectDisk stats path and returns a [DiskBlock] disk for block devices and
// a [DiskFile] disk for anything else. The stat failure is translated through
// the I/O rules (a missing path surfaces as an I/O failure with cause).
func DetectDisk(path string) (Disk, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return Disk{}, NewIOError(err)
	}

	if stat.Mode&unix.S_IFMT == unix.S_IFBLK {
		return BlockDisk(path), nil
	}

	return FileDisk(path), nil
}

// VdevType is the redundancy grouping of a vdev.
type VdevType int

const (
	// VdevNaked is a single disk without redundancy.
	VdevNaked VdevType = iota
	VdevMirror
	VdevRaidZ
	VdevRaidZ2
	VdevRaidZ3
)

func (t VdevType) String() string {
	switch t {
	case VdevMirror:
		return "mirror"
	case VdevRaidZ:
		return "raidz"
	case VdevRaidZ2:
		return "raidz2"
	case VdevRaidZ3:
		return "raidz3"
	default:
		return "disk"
	}
}

// minDisks is the structural floor for a vdev of this type; fewer members
// cannot form the grouping at all.
func (t VdevType) minDisks() int {
	switch t {
	case VdevMirror:
		return 2
	case VdevRaidZ:
		return 3
	case VdevRaidZ2:
		return 4
	case VdevRaidZ3:
		return 5
	default:
		return 1
	}
}

// Vdev is one virtual device of a pool: a grouping type and its members.
type Vdev struct {
	Type  VdevType
	Disks []Disk
}

// NakedVdev wraps a single disk into a redundancy-free vdev.
func NakedVdev(disk Disk) Vdev {
	return Vdev{Type: VdevNaked, Disks: []Disk{disk}}
}

// MirrorVdev groups disks into a mirror.
func MirrorVdev(disks ...Disk) Vdev {
	return Vdev{Type: VdevMirror, Disks: disks}
}

// RaidZVdev groups disks into a raidz of the given parity level (1 to 3).
func RaidZVdev(parity int, disks ...Disk) Vdev {
	t := VdevRaidZ
	switch parity {
	case 2:
		t = VdevRaidZ2
	case 3:
		t = VdevRaidZ3
	}

	return Vdev{Type: t, Disks: disks}
}

// isValid reports whether the vdev can structurally exist: a naked vdev has
// exactly one member, grouped vdevs carry at least their type's minimum, and
// every member has a non-empty path.
func (v Vdev) isValid() bool {
	if v.Type == VdevNaked && len(v.Disks) != 1 {
		return false
	}

	if len(v.Disks) < v.Type.minDisks() {
		return false
	}

	for _, d := range v.Disks {
		if d.Path == "" {
			return false
		}
	}

	return true
}

// createArgs renders the vdev as arguments for a create invocation: grouped
// vdevs emit their type keyword followed by member paths, naked vdevs emit
// the bare path.
func (v Vdev) createArgs() []string {
	var args []string

	if v.Type != VdevNaked {
		args = append(args, v.Type.String())
	}

	for _, d := range v.Disks {
		args = append(args, d.Path)
	}

	return args
}
