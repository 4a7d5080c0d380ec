package zpool

import "context"

// UpdateProperties drives the pool's settable attributes toward the desired
// write set and returns the resulting snapshot. It issues exactly one set
// call per attribute whose current value differs from the desired one, in a
// fixed order (autoexpand, autoreplace, cachefile, comment, delegation,
// failmode); attributes already at their desired value are never touched.
//
// The sequence is not atomic: when a set call fails, the remaining ones are
// not attempted and the changes already applied stay in effect. The
// underlying system offers no transactional primitive, so there is no
// rollback; the failure is returned as-is and the caller decides.
func (h *Handler) UpdateProperties(ctx context.Context, name string, desired PropertiesWrite) (Properties, error) {
	exists, err := h.backend.Exists(ctx, name)
	if err != nil {
		return Properties{}, err
	}
	if !exists {
		return Properties{}, ErrPoolNotFound
	}

	// Existence was just confirmed, so the unchecked read suffices.
	current, err := h.backend.ReadPropertiesUnchecked(ctx, name)
	if err != nil {
		return Properties{}, err
	}

	if current.AutoExpand != desired.AutoExpand {
		if err := h.backend.SetUnchecked(ctx, name, "autoexpand", boolValue(desired.AutoExpand)); err != nil {
			return Properties{}, err
		}
	}

	if current.AutoReplace != desired.AutoReplace {
		if err := h.backend.SetUnchecked(ctx, name, "autoreplace", boolValue(desired.AutoReplace)); err != nil {
			return Properties{}, err
		}
	}

	if current.CacheFile != desired.CacheFile {
		if err := h.backend.SetUnchecked(ctx, name, "cachefile", desired.CacheFile); err != nil {
			return Properties{}, err
		}
	}

	// An empty desired comment means "no comment set", matching how an unset
	// comment reads back; a pool without a comment therefore never receives
	// a spurious clearing call.
	if current.Comment != desired.Comment {
		if err := h.backend.SetUnchecked(ctx, name, "comment", desired.Comment); err != nil {
			return Properties{}, err
		}
	}

	if current.Delegation != desired.Delegation {
		if err := h.backend.SetUnchecked(ctx, name, "delegation", boolValue(desired.Delegation)); err != nil {
			return Properties{}, err
		}
	}

	if current.FailMode != desired.FailMode {
		if err := h.backend.SetUnchecked(ctx, name, "failmode", desired.FailMode.String()); err != nil {
			return Properties{}, err
		}
	}

	return h.backend.ReadPropertiesUnchecked(ctx, name)
}
