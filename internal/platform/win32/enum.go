package win32

import "sync"

// handleCollector accumulates handles reported by an EnumWindows callback.
// A single collector and callback serve every enumeration: the runtime
// never releases callbacks, so one must not be created per call.
type handleCollector struct {
	mu      sync.Mutex
	handles []uintptr
}

// add records hwnd and returns 1 to continue enumeration.
func (c *handleCollector) add(hwnd uintptr) uintptr {
	c.handles = append(c.handles, hwnd)
	return 1
}

// collect holds the collector for the duration of enumerate and returns
// the handles it gathered.
func (c *handleCollector) collect(enumerate func() error) ([]uintptr, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles = nil
	err := enumerate()
	handles := c.handles
	c.handles = nil
	return handles, err
}
