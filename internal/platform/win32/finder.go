//go:build windows

package win32

import (
	"unsafe"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// BackendName identifies windows reachable through this package.
const BackendName = "win32"

var (
	topLevel     handleCollector
	enumCallback = windows.NewCallback(func(hwnd windows.HWND, _ uintptr) uintptr {
		return topLevel.add(uintptr(hwnd))
	})
)

// WindowFinder implements platform.WindowFinder with EnumWindows.
type WindowFinder struct{}

// NewWindowFinder creates a new Win32 window finder.
func NewWindowFinder() *WindowFinder {
	return &WindowFinder{}
}

func (f *WindowFinder) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	handles, err := topLevel.collect(func() error {
		return windows.EnumWindows(enumCallback, nil)
	})
	if err != nil {
		return nil, errors.Wrap(err, "EnumWindows")
	}
	found := make([]model.Window, 0, len(handles))
	for _, h := range handles {
		found = append(found, describeWindow(windows.HWND(h)))
	}
	return platform.FilterWindows(found, opts), nil
}

func (f *WindowFinder) IsWindow(handle model.Handle) bool {
	return windows.IsWindow(windows.HWND(handle))
}

func describeWindow(hwnd windows.HWND) model.Window {
	var pid uint32
	_, _ = windows.GetWindowThreadProcessId(hwnd, &pid)
	return model.Window{
		Handle:  model.Handle(hwnd),
		Title:   windowText(hwnd),
		PID:     int(pid),
		Backend: BackendName,
		Visible: windows.IsWindowVisible(hwnd),
	}
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	r, _, _ := getWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:r])
}
