package driver

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWindowFound is matched by *NoWindowFoundError via errors.Is.
	ErrNoWindowFound = errors.New("no window found")

	// ErrStaleHandle means a resolved handle no longer refers to a live window.
	ErrStaleHandle = errors.New("window handle is stale")
)

// NoWindowFoundError is returned when no window title matches the pattern.
type NoWindowFoundError struct {
	Pattern string
}

func (e *NoWindowFoundError) Error() string {
	return fmt.Sprintf("no window found matching %q", e.Pattern)
}

func (e *NoWindowFoundError) Is(target error) bool {
	return target == ErrNoWindowFound
}
