package win32

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestHandleCollector_Collect(t *testing.T) {
	var c handleCollector
	got, err := c.collect(func() error {
		for _, h := range []uintptr{3, 1, 2} {
			if c.add(h) != 1 {
				t.Error("add should continue enumeration")
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []uintptr{3, 1, 2}) {
		t.Errorf("handles = %v, want [3 1 2]", got)
	}
}

func TestHandleCollector_ResetsBetweenRuns(t *testing.T) {
	var c handleCollector
	c.collect(func() error { c.add(1); return nil })

	got, _ := c.collect(func() error { c.add(2); return nil })
	if !reflect.DeepEqual(got, []uintptr{2}) {
		t.Errorf("handles = %v, want [2]", got)
	}
}

func TestHandleCollector_ReturnsError(t *testing.T) {
	var c handleCollector
	want := errors.New("EnumWindows failed")
	if _, err := c.collect(func() error { return want }); err != want {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestHandleCollector_SerialisesRuns(t *testing.T) {
	var c handleCollector
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(h uintptr) {
			defer wg.Done()
			got, _ := c.collect(func() error {
				for j := 0; j < 50; j++ {
					c.add(h)
				}
				return nil
			})
			if len(got) != 50 {
				t.Errorf("run %d collected %d handles, want 50", h, len(got))
			}
			for _, g := range got {
				if g != h {
					t.Errorf("run %d collected foreign handle %d", h, g)
					return
				}
			}
		}(uintptr(i))
	}
	wg.Wait()
}
