package platform

import "github.com/mj1618/keycycle/internal/model"

// WindowFinder enumerates top-level windows through the OS window manager.
type WindowFinder interface {
	// ListWindows returns windows in the order the window manager
	// enumerates them, filtered by opts.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// IsWindow reports whether handle still refers to a live window.
	IsWindow(handle model.Handle) bool
}

// KeySender injects synthetic keyboard input into a specific window.
type KeySender interface {
	// SendChord presses and releases chord in the window identified by
	// handle. It returns once the events are queued; delivery is not
	// acknowledged.
	SendChord(handle model.Handle, chord model.Chord) error
}
