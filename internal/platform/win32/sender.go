//go:build windows

package win32

import (
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/mj1618/keycycle/internal/model"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// KeySender implements platform.KeySender by posting WM_KEYDOWN/WM_KEYUP
// messages to the target window.
//
// Modifier state is not carried by posted messages, so for the duration of
// a chord the calling thread attaches to the target's input queue and marks
// the modifiers as pressed in the shared keyboard state.
type KeySender struct{}

// NewKeySender creates a new Win32 key sender.
func NewKeySender() *KeySender {
	return &KeySender{}
}

func (s *KeySender) SendChord(handle model.Handle, chord model.Chord) error {
	hwnd := windows.HWND(handle)
	if !windows.IsWindow(hwnd) {
		return errors.Errorf("window %d is gone", handle)
	}
	r, err := resolveChord(chord)
	if err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if len(r.modifiers) > 0 {
		restore, err := holdModifiers(hwnd, r.modifiers)
		if err != nil {
			return errors.Wrapf(err, "send %s", chord)
		}
		defer restore()
	}

	down, up := uint32(wmKeyDown), uint32(wmKeyUp)
	if r.alt {
		down, up = wmSysKeyDown, wmSysKeyUp
	}

	for _, m := range r.modifiers {
		if err := post(hwnd, down, m, false, r.alt); err != nil {
			return errors.Wrapf(err, "send %s", chord)
		}
	}
	if err := post(hwnd, down, r.key, false, r.alt); err != nil {
		return errors.Wrapf(err, "send %s", chord)
	}
	if err := post(hwnd, up, r.key, true, r.alt); err != nil {
		return errors.Wrapf(err, "send %s", chord)
	}
	for i := len(r.modifiers) - 1; i >= 0; i-- {
		if err := post(hwnd, up, r.modifiers[i], true, r.alt); err != nil {
			return errors.Wrapf(err, "send %s", chord)
		}
	}
	slog.Debug("posted chord", "hwnd", uintptr(hwnd), "chord", chord.String())
	return nil
}

func post(hwnd windows.HWND, msg uint32, vk uint16, up, alt bool) error {
	scan, _, _ := mapVirtualKeyW.Call(uintptr(vk), mapvkVkToVsc)
	r, _, callErr := postMessageW.Call(uintptr(hwnd), uintptr(msg), uintptr(vk), keyLParam(vk, scan, up, alt))
	if r == 0 {
		return errors.Wrap(callErr, "PostMessageW")
	}
	return nil
}

// holdModifiers attaches to the window's input thread and marks modifiers as
// down in its keyboard state. The returned func restores the previous state
// and detaches.
func holdModifiers(hwnd windows.HWND, modifiers []uint16) (func(), error) {
	targetThread, err := windows.GetWindowThreadProcessId(hwnd, nil)
	if err != nil {
		return nil, errors.Wrap(err, "GetWindowThreadProcessId")
	}
	selfThread := windows.GetCurrentThreadId()
	attached := false
	if targetThread != selfThread {
		r, _, callErr := attachThreadInput.Call(uintptr(selfThread), uintptr(targetThread), 1)
		if r == 0 {
			return nil, errors.Wrap(callErr, "AttachThreadInput")
		}
		attached = true
	}
	detach := func() {
		if attached {
			attachThreadInput.Call(uintptr(selfThread), uintptr(targetThread), 0)
		}
	}

	var prev, state [256]byte
	if r, _, callErr := getKeyboardState.Call(uintptr(unsafe.Pointer(&prev[0]))); r == 0 {
		detach()
		return nil, errors.Wrap(callErr, "GetKeyboardState")
	}
	state = prev
	for _, m := range modifiers {
		state[m] |= keyPressed
	}
	if r, _, callErr := setKeyboardState.Call(uintptr(unsafe.Pointer(&state[0]))); r == 0 {
		detach()
		return nil, errors.Wrap(callErr, "SetKeyboardState")
	}

	return func() {
		setKeyboardState.Call(uintptr(unsafe.Pointer(&prev[0])))
		detach()
	}, nil
}
