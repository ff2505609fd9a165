package win32

import (
	"github.com/mj1618/keycycle/internal/model"
	"github.com/pkg/errors"
)

// Windows virtual-key codes from WinUser.h.
var keyCodeMap = map[string]uint16{
	"backspace": 0x08, "tab": 0x09, "enter": 0x0D, "escape": 0x1B, "space": 0x20,
	"pageup": 0x21, "pagedown": 0x22, "end": 0x23, "home": 0x24,
	"left": 0x25, "up": 0x26, "right": 0x27, "down": 0x28,
	"insert": 0x2D, "delete": 0x2E,
	"f1": 0x70, "f2": 0x71, "f3": 0x72, "f4": 0x73, "f5": 0x74, "f6": 0x75,
	"f7": 0x76, "f8": 0x77, "f9": 0x78, "f10": 0x79, "f11": 0x7A, "f12": 0x7B,
}

var modifierMap = map[string]uint16{
	"shift": 0x10,
	"ctrl":  0x11,
	"alt":   0x12,
	"win":   0x5B,
}

// Keys that set the extended-key bit (bit 24) in the message lParam.
var extendedKeys = map[uint16]bool{
	0x21: true, 0x22: true, 0x23: true, 0x24: true,
	0x25: true, 0x26: true, 0x27: true, 0x28: true,
	0x2D: true, 0x2E: true, 0x5B: true,
}

// keyCode returns the virtual-key code for a canonical key name.
// Letters and digits map to their ASCII upper-case code points.
func keyCode(name string) (uint16, error) {
	if len(name) == 1 {
		ch := name[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return uint16(ch - 'a' + 'A'), nil
		case ch >= '0' && ch <= '9':
			return uint16(ch), nil
		}
	}
	if code, ok := keyCodeMap[name]; ok {
		return code, nil
	}
	return 0, errors.Wrapf(model.ErrUnknownKey, "key %q", name)
}

// resolvedChord is a chord translated into virtual-key codes.
type resolvedChord struct {
	modifiers []uint16
	key       uint16
	alt       bool
}

func resolveChord(c model.Chord) (resolvedChord, error) {
	var r resolvedChord
	for _, m := range c.Modifiers {
		code, ok := modifierMap[m]
		if !ok {
			return resolvedChord{}, errors.Wrapf(model.ErrUnknownKey, "modifier %q", m)
		}
		if m == "alt" {
			r.alt = true
		}
		r.modifiers = append(r.modifiers, code)
	}
	key, err := keyCode(c.Key)
	if err != nil {
		return resolvedChord{}, err
	}
	r.key = key
	return r, nil
}

// keyLParam builds the WM_KEYDOWN / WM_KEYUP lParam: repeat count 1, scan
// code in bits 16-23, extended flag in bit 24, context code in bit 29 and
// previous-state/transition bits 30-31 for key-up.
func keyLParam(vk uint16, scan uintptr, up, alt bool) uintptr {
	lparam := uintptr(1) | (scan&0xFF)<<16
	if extendedKeys[vk] {
		lparam |= 1 << 24
	}
	if alt {
		lparam |= 1 << 29
	}
	if up {
		lparam |= 1<<30 | 1<<31
	}
	return lparam
}
