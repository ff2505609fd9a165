// Package driver finds the target editor window and drives the fixed
// key-chord cycle into it on a timer.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/mj1618/keycycle/internal/platform"
)

const (
	// TitlePattern matches any Visual Studio Code window title.
	TitlePattern = ".*Visual Studio Code.*"

	// Backend is the accessibility backend windows are resolved through.
	Backend = "win32"

	// KeyDelay is the pause after each chord so the target can process it.
	KeyDelay = 50 * time.Millisecond

	// Interval is the pause between cycles.
	Interval = 60 * time.Second
)

// Cycle is the chord sequence sent on every cycle: select all, copy,
// select all, delete, paste, save.
var Cycle = []model.Chord{
	model.MustParseChord("ctrl+a"),
	model.MustParseChord("ctrl+c"),
	model.MustParseChord("ctrl+a"),
	model.MustParseChord("delete"),
	model.MustParseChord("ctrl+v"),
	model.MustParseChord("ctrl+s"),
}

// Options configures a Driver. Zero values fall back to stdout, the default
// slog logger and a real timer.
type Options struct {
	Out     io.Writer
	Logger  *slog.Logger
	Sleeper Sleeper
}

// Driver owns the resolved window handle for the life of the process.
type Driver struct {
	finder  platform.WindowFinder
	sender  platform.KeySender
	sleeper Sleeper
	out     io.Writer
	log     *slog.Logger

	mu     sync.Mutex
	state  State
	handle model.Handle
}

// New creates a Driver over the given platform backends.
func New(finder platform.WindowFinder, sender platform.KeySender, opts Options) *Driver {
	d := &Driver{
		finder:  finder,
		sender:  sender,
		sleeper: opts.Sleeper,
		out:     opts.Out,
		log:     opts.Logger,
	}
	if d.sleeper == nil {
		d.sleeper = TimerSleeper{}
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	return d
}

// NewFromProvider creates a Driver over a platform provider.
func NewFromProvider(p *platform.Provider, opts Options) (*Driver, error) {
	if p.WindowFinder == nil {
		return nil, fmt.Errorf("window enumeration not available on this platform")
	}
	if p.KeySender == nil {
		return nil, fmt.Errorf("input injection not available on this platform")
	}
	return New(p.WindowFinder, p.KeySender, opts), nil
}

// State returns the driver's current state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Handle returns the handle resolved by the last successful Attach.
func (d *Driver) Handle() model.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle
}

func (d *Driver) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// FindTarget returns the first window, in enumeration order, whose title
// matches pattern and which is reachable through Backend. With more than one
// match the choice follows the window manager's order, which is not stable.
func (d *Driver) FindTarget(pattern string) (model.Window, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return model.Window{}, fmt.Errorf("invalid title pattern %q: %w", pattern, err)
	}
	windows, err := d.finder.ListWindows(platform.ListOptions{Title: re, Backend: Backend})
	if err != nil {
		return model.Window{}, fmt.Errorf("failed to list windows: %w", err)
	}
	d.log.Debug("window enumeration", "pattern", pattern, "matches", len(windows))
	if len(windows) == 0 {
		return model.Window{}, &NoWindowFoundError{Pattern: pattern}
	}
	return windows[0], nil
}

// FindTargetWindow is FindTarget reduced to the window handle.
func (d *Driver) FindTargetWindow(pattern string) (model.Handle, error) {
	w, err := d.FindTarget(pattern)
	if err != nil {
		return 0, err
	}
	return w.Handle, nil
}

// WindowRef is a live reference to an attached window.
type WindowRef struct {
	Handle model.Handle
	sender platform.KeySender
}

// Send injects one chord into the window.
func (w *WindowRef) Send(chord model.Chord) error {
	return w.sender.SendChord(w.Handle, chord)
}

// Attach binds handle to the driver's key sender.
func (d *Driver) Attach(handle model.Handle) (*WindowRef, error) {
	if !d.finder.IsWindow(handle) {
		return nil, fmt.Errorf("attach to window %s: %w", handle, ErrStaleHandle)
	}
	d.mu.Lock()
	d.handle = handle
	d.mu.Unlock()
	return &WindowRef{Handle: handle, sender: d.sender}, nil
}

// RunCycle sends every chord in Cycle, pausing KeyDelay after each. A cycle
// in progress is never cut short by ctx; only its values are used.
// The first injection error aborts the cycle.
func (d *Driver) RunCycle(ctx context.Context, w *WindowRef) error {
	d.setState(StateInjecting)
	defer d.setState(StateIdle)

	uninterrupted := context.WithoutCancel(ctx)
	for _, chord := range Cycle {
		if err := w.Send(chord); err != nil {
			return fmt.Errorf("send %s to window %s: %w", chord, w.Handle, err)
		}
		d.log.Debug("sent chord", "hwnd", w.Handle.String(), "chord", chord.String())
		_ = d.sleeper.Sleep(uninterrupted, KeyDelay)
	}
	return nil
}

// Loop runs a cycle, then sleeps Interval, until ctx is cancelled. It
// returns nil on cancellation and the error of a failed cycle otherwise.
func (d *Driver) Loop(ctx context.Context, w *WindowRef) error {
	defer d.setState(StateTerminated)
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.RunCycle(ctx, w); err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Cycle complete. Waiting %d seconds…\n", int(Interval/time.Second))
		if err := d.sleeper.Sleep(ctx, Interval); err != nil {
			return nil
		}
	}
}

// Run resolves the target window, attaches, prints the startup banner and
// loops until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	handle, err := d.FindTargetWindow(TitlePattern)
	if err != nil {
		return err
	}
	w, err := d.Attach(handle)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Background automation started on VS Code (hwnd=%s)\n", handle)
	fmt.Fprintln(d.out, "Press Ctrl+C in terminal to stop.")

	if err := d.Loop(ctx, w); err != nil {
		return err
	}
	fmt.Fprintln(d.out, "Stopped by user.")
	return nil
}
