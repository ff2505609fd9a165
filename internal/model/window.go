package model

import "fmt"

// Handle is an opaque platform window identifier (an HWND on Windows).
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("%d", uintptr(h))
}

// Window represents a top-level application window.
type Window struct {
	Handle  Handle `yaml:"handle"            json:"handle"`
	Title   string `yaml:"title"             json:"title"`
	PID     int    `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Backend string `yaml:"backend"           json:"backend"`
	Visible bool   `yaml:"visible,omitempty" json:"visible,omitempty"`
}
