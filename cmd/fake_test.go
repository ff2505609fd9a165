package cmd

import (
	"errors"
	"sync"
	"testing"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/platform"
)

type fakeFinder struct {
	windows []model.Window
}

func (f *fakeFinder) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	return platform.FilterWindows(f.windows, opts), nil
}

func (f *fakeFinder) IsWindow(handle model.Handle) bool {
	for _, w := range f.windows {
		if w.Handle == handle {
			return true
		}
	}
	return false
}

type fakeSender struct {
	mu   sync.Mutex
	keys []string
	fail bool
}

func (s *fakeSender) SendChord(handle model.Handle, chord model.Chord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("PostMessageW failed")
	}
	s.keys = append(s.keys, chord.String())
	return nil
}

func (s *fakeSender) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.keys...)
}

func testWindows() []model.Window {
	return []model.Window{
		{Handle: 7, Title: "Untitled - Notepad", Backend: "win32", Visible: true},
		{Handle: 42, Title: "main.go - keycycle - Visual Studio Code", Backend: "win32", Visible: true},
		{Handle: 43, Title: "Visual Studio Code", Backend: "win32"},
	}
}

// useFakeProvider registers a fake provider for the duration of the test.
func useFakeProvider(t *testing.T, windows []model.Window) (*fakeFinder, *fakeSender) {
	t.Helper()
	finder := &fakeFinder{windows: windows}
	sender := &fakeSender{}
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{WindowFinder: finder, KeySender: sender}, nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = orig })
	return finder, sender
}
