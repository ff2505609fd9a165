//go:build windows

package win32

import (
	"testing"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/platform"
)

func TestListWindows_ReportsWin32Backend(t *testing.T) {
	windows, err := NewWindowFinder().ListWindows(platform.ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range windows {
		if w.Backend != BackendName {
			t.Errorf("window %d: backend %q, want %q", w.Handle, w.Backend, BackendName)
		}
	}
}

// The runtime caps callbacks at about 2000; enumeration must reuse one.
func TestListWindows_RepeatedCallsReuseCallback(t *testing.T) {
	f := NewWindowFinder()
	for i := 0; i < 2500; i++ {
		if _, err := f.ListWindows(platform.ListOptions{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestWindowText_UnknownHandle(t *testing.T) {
	if got := windowText(0); got != "" {
		t.Errorf("windowText(0) = %q, want empty", got)
	}
	if NewWindowFinder().IsWindow(model.Handle(0)) {
		t.Error("handle 0 should not be a window")
	}
}
