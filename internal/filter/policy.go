// Package filter decides which entries are visible and owns the persisted,
// observable filter toggles.
package filter

import "github.com/Tiliavir/trivial-calendar/internal/model"

// Include reports whether e is visible under s. The category toggle must be
// on; entries from a placeholder source also need that source's toggle.
// Local entries are never filtered by source.
func Include(e model.Entry, s model.FilterState) bool {
	cf, ok := model.CategoryFlag(e.Category())
	if !ok || !s.Enabled(cf) {
		return false
	}
	if sf, ok := model.SourceFlag(e.Source); ok && !s.Enabled(sf) {
		return false
	}
	return true
}

// Apply returns the visible entries in their original order.
func Apply(entries []model.Entry, s model.FilterState) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if Include(e, s) {
			out = append(out, e)
		}
	}
	return out
}
