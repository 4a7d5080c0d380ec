package zpool

import (
	"errors"
	"io/fs"
	"os/exec"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Compiled once at init and read-only afterwards, safe for concurrent use.
//
//nolint:gochecknoglobals
var (
	reVdevReuse    = regexp.MustCompile(`following errors:\n(\S+) is part of active pool '(\S+)'`)
	reVdevReuseZol = regexp.MustCompile("cannot create \\S+: one or more vdevs refer to the same device, or one of\nthe devices is part of an active md or lvm device\n")
	reTooSmall     = regexp.MustCompile(`cannot create \S+: one or more devices is less than the minimum size \S+`)
	rePermDenied   = regexp.MustCompile("cannot create \\S+: permission denied\n")
)

// Classify turns raw diagnostic output of the external tool into a typed
// [Error]. The bytes are decoded lossily (invalid sequences replaced, the
// classification itself never fails) and matched against the pattern table
// most-specific-first; the first match wins. Unmatched text is retained
// verbatim on an unclassified error.
func Classify(diagnostic []byte) *Error {
	text := strings.ToValidUTF8(string(diagnostic), string(utf8.RuneError))

	if caps := reVdevReuse.FindStringSubmatch(text); caps != nil {
		return NewVdevReuseError(caps[1], caps[2])
	}

	// ZoL phrases the same condition without naming the vdev or pool; the
	// missing captures stay empty rather than being guessed.
	if reVdevReuseZol.MatchString(text) {
		return NewVdevReuseError("", "")
	}

	if reTooSmall.MatchString(text) {
		return ErrDeviceTooSmall
	}

	if rePermDenied.MatchString(text) {
		return ErrPermissionDenied
	}

	return NewUnclassifiedError(text)
}

// TranslateIO maps a generic I/O failure (typically a subprocess launch
// failure) into the taxonomy: a missing executable becomes [ErrCmdNotFound],
// everything else is wrapped as an I/O failure with the cause retained.
func TranslateIO(err error) *Error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrCmdNotFound
	}

	return NewIOError(err)
}
