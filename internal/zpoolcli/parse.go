package zpoolcli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertwitch/zpctl/internal/zpool"
)

// unsetValue is what the tool prints for properties without a value.
const unsetValue = "-"

// parseProperties decodes `zpool get -Hp all NAME` output: one tab-separated
// line per property (name, property, value, source). Properties this layer
// does not model are skipped; malformed values for modeled properties are a
// parse failure.
func parseProperties(stdout []byte) (zpool.Properties, error) {
	props := zpool.Properties{}

	for _, line := range strings.Split(string(stdout), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return zpool.Properties{}, zpool.NewParseError(fmt.Errorf("malformed property line: %q", line))
		}

		key, value := fields[1], fields[2]

		var err error
		switch key {
		case "size":
			props.Size, err = parseUint(value)
		case "allocated":
			props.Alloc, err = parseUint(value)
		case "free":
			props.Free, err = parseUint(value)
		case "freeing":
			props.Freeing, err = parseUint(value)
		case "expandsize":
			props.ExpandSize, err = parseUint(value)
		case "capacity":
			props.Capacity, err = parseUint(value)
		case "fragmentation":
			props.Fragmentation, err = parseUint(strings.TrimSuffix(value, "%"))
		case "dedupratio":
			props.DedupRatio, err = parseRatio(value)
		case "guid":
			props.GUID, err = parseUint(value)
		case "health":
			props.Health, _ = zpool.ParseHealth(value)
		case "readonly":
			props.ReadOnly = value == "on"
		case "autoexpand":
			props.AutoExpand = value == "on"
		case "autoreplace":
			props.AutoReplace = value == "on"
		case "cachefile":
			props.CacheFile = parseOptional(value)
		case "comment":
			props.Comment = parseOptional(value)
		case "delegation":
			props.Delegation = value == "on"
		case "failmode":
			props.FailMode, _ = zpool.ParseFailMode(value)
		}

		if err != nil {
			return zpool.Properties{}, zpool.NewParseError(fmt.Errorf("property %q value %q: %w", key, value, err))
		}
	}

	return props, nil
}

// parseOptional maps the tool's unset marker to the empty string.
func parseOptional(value string) string {
	if value == unsetValue {
		return ""
	}

	return value
}

// parseUint decodes a numeric property, treating the unset marker as zero.
func parseUint(value string) (uint64, error) {
	if value == unsetValue {
		return 0, nil
	}

	return strconv.ParseUint(value, 10, 64)
}

// parseRatio decodes a dedup ratio, with or without the trailing "x".
func parseRatio(value string) (float64, error) {
	if value == unsetValue {
		return 0, nil
	}

	return strconv.ParseFloat(strings.TrimSuffix(value, "x"), 64)
}

// parseStatus decodes `zpool status NAME` output into a [zpool.Pool] from
// its "key: value" header lines; the vdev table below the config: marker is
// not modeled at this layer.
func parseStatus(stdout []byte) (zpool.Pool, error) {
	pool := zpool.Pool{}
	seenName := false

	for _, line := range strings.Split(string(stdout), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		switch strings.TrimSpace(key) {
		case "pool":
			pool.Name = strings.TrimSpace(value)
			seenName = true
		case "state":
			pool.Health, _ = zpool.ParseHealth(value)
		case "action":
			pool.Action = strings.TrimSpace(value)
		case "errors":
			pool.Errors = strings.TrimSpace(value)
		}
	}

	if !seenName {
		return zpool.Pool{}, zpool.NewParseError(fmt.Errorf("no pool header in status output: %q", string(stdout)))
	}

	return pool, nil
}

// parseImportList decodes `zpool import [-d DIR]` output: one stanza per
// importable pool, each opened by a "pool:" line. No stanzas means nothing
// to import.
func parseImportList(stdout []byte) ([]zpool.Pool, error) {
	var pools []zpool.Pool
	var current *zpool.Pool

	for _, line := range strings.Split(string(stdout), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "pool":
			pools = append(pools, zpool.Pool{Name: value})
			current = &pools[len(pools)-1]
		case "id":
			if current == nil {
				continue
			}

			id, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, zpool.NewParseError(fmt.Errorf("pool id %q: %w", value, err))
			}
			current.ID = id
		case "state":
			if current == nil {
				continue
			}
			current.Health, _ = zpool.ParseHealth(value)
		case "action":
			if current == nil {
				continue
			}
			current.Action = value
		}
	}

	return pools, nil
}

// parseList decodes `zpool list -Hp -o name,health` output: one
// tab-separated line per active pool.
func parseList(stdout []byte) ([]zpool.Pool, error) {
	var pools []zpool.Pool

	for _, line := range strings.Split(string(stdout), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, health, found := strings.Cut(line, "\t")
		if !found {
			return nil, zpool.NewParseError(fmt.Errorf("malformed list line: %q", line))
		}

		parsed, _ := zpool.ParseHealth(health)
		pools = append(pools, zpool.Pool{
			Name:   strings.TrimSpace(name),
			Health: parsed,
		})
	}

	return pools, nil
}
