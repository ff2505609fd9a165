package driver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/platform"
)

// recorder keeps the interleaved log of injections and sleeps.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type fakeFinder struct {
	windows []model.Window
	listErr error
	dead    map[model.Handle]bool
	lastOpt platform.ListOptions
}

func (f *fakeFinder) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.lastOpt = opts
	if f.listErr != nil {
		return nil, f.listErr
	}
	return platform.FilterWindows(f.windows, opts), nil
}

func (f *fakeFinder) IsWindow(handle model.Handle) bool {
	return !f.dead[handle]
}

type fakeSender struct {
	rec     *recorder
	failOn  string
	handles []model.Handle
	keys    []string
}

var errInjection = errors.New("injection failed")

func (s *fakeSender) SendChord(handle model.Handle, chord model.Chord) error {
	if chord.String() == s.failOn {
		return errInjection
	}
	s.handles = append(s.handles, handle)
	s.keys = append(s.keys, chord.String())
	s.rec.add("key %s", chord)
	return nil
}

// fakeSleeper records requested durations without blocking. onSleep, if
// set, runs before the context is checked.
type fakeSleeper struct {
	rec     *recorder
	onSleep func(d time.Duration)
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.rec.add("sleep %s", d)
	if s.onSleep != nil {
		s.onSleep(d)
	}
	return ctx.Err()
}

func vscodeWindow(h model.Handle) model.Window {
	return model.Window{Handle: h, Title: "main.go - keycycle - Visual Studio Code", Backend: "win32", Visible: true}
}

type harness struct {
	rec     *recorder
	finder  *fakeFinder
	sender  *fakeSender
	sleeper *fakeSleeper
}

func newHarness(windows ...model.Window) *harness {
	rec := &recorder{}
	return &harness{
		rec:     rec,
		finder:  &fakeFinder{windows: windows},
		sender:  &fakeSender{rec: rec},
		sleeper: &fakeSleeper{rec: rec},
	}
}

func (h *harness) driver(opts Options) *Driver {
	opts.Sleeper = h.sleeper
	return New(h.finder, h.sender, opts)
}
