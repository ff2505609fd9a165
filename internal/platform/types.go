package platform

import (
	"regexp"

	"github.com/mj1618/keycycle/internal/model"
)

// ListOptions controls window enumeration.
type ListOptions struct {
	Title       *regexp.Regexp // Only windows whose title matches (nil = all)
	Backend     string         // Only windows reachable through this backend ("" = any)
	VisibleOnly bool           // Skip hidden windows
}

// Match reports whether w passes the filters in opts.
func (opts ListOptions) Match(w model.Window) bool {
	if opts.Backend != "" && w.Backend != opts.Backend {
		return false
	}
	if opts.VisibleOnly && !w.Visible {
		return false
	}
	if opts.Title != nil && !opts.Title.MatchString(w.Title) {
		return false
	}
	return true
}

// FilterWindows returns the windows that pass opts, preserving order.
func FilterWindows(windows []model.Window, opts ListOptions) []model.Window {
	var out []model.Window
	for _, w := range windows {
		if opts.Match(w) {
			out = append(out, w)
		}
	}
	return out
}
