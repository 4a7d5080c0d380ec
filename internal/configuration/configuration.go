// Package configuration reads the application's env-style configuration file
// and coerces its values into typed settings with sane defaults.
package configuration

import (
	"errors"
	"io/fs"
	"strconv"
	"time"
)

// Configuration file keys.
const (
	KeyCmd         = "ZPCTL_ZPOOL_CMD"
	KeyTimeoutSecs = "ZPCTL_TIMEOUT_SECS"
	KeyImportDir   = "ZPCTL_IMPORT_DIR"
	KeyWatchMsecs  = "ZPCTL_WATCH_MSECS"
)

// Defaults applied when a key is missing or unparseable.
const (
	DefaultTimeout       = 60 * time.Second
	DefaultWatchInterval = 2 * time.Second
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Settings is the typed application configuration.
type Settings struct {
	Cmd           string
	Timeout       time.Duration
	ImportDir     string
	WatchInterval time.Duration
}

// Handler loads and coerces configuration through a pluggable provider.
type Handler struct {
	GenericHandler genericConfigProvider
}

func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// Load reads the given configuration files and returns typed settings. A
// missing file is not an error; all defaults apply then.
func (c *Handler) Load(filenames ...string) (Settings, error) {
	settings := Settings{
		Timeout:       DefaultTimeout,
		WatchInterval: DefaultWatchInterval,
	}

	envMap, err := c.GenericHandler.Read(filenames...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}

		return settings, err
	}

	settings.Cmd = c.MapKeyToString(envMap, KeyCmd)
	settings.ImportDir = c.MapKeyToString(envMap, KeyImportDir)

	if secs := c.MapKeyToInt(envMap, KeyTimeoutSecs); secs > 0 {
		settings.Timeout = time.Duration(secs) * time.Second
	}

	if msecs := c.MapKeyToInt(envMap, KeyWatchMsecs); msecs > 0 {
		settings.WatchInterval = time.Duration(msecs) * time.Millisecond
	}

	return settings, nil
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
