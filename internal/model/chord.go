package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a chord names a key that has no mapping.
var ErrUnknownKey = errors.New("unknown key")

// Chord is a key-chord: modifiers held down while Key is pressed and released.
type Chord struct {
	Modifiers []string
	Key       string
}

// modifierAliases maps accepted modifier spellings to their canonical names.
var modifierAliases = map[string]string{
	"ctrl": "ctrl", "control": "ctrl",
	"shift": "shift",
	"alt":   "alt", "opt": "alt", "option": "alt",
	"win": "win", "super": "win", "cmd": "win",
}

// keyAliases maps accepted key spellings to their canonical names.
var keyAliases = map[string]string{
	"del":    "delete",
	"return": "enter",
	"esc":    "escape",
	"bs":     "backspace",
}

// ParseChord parses "ctrl+a", "Ctrl+Shift+T" or "delete" into a Chord.
// Modifiers are canonicalised and deduplicated in the order given.
func ParseChord(s string) (Chord, error) {
	var c Chord
	parts := strings.Split(s, "+")
	seen := make(map[string]bool, len(parts))
	for i, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return Chord{}, fmt.Errorf("invalid chord %q: empty key", s)
		}
		if mod, ok := modifierAliases[p]; ok && i < len(parts)-1 {
			if !seen[mod] {
				seen[mod] = true
				c.Modifiers = append(c.Modifiers, mod)
			}
			continue
		}
		if i != len(parts)-1 {
			return Chord{}, fmt.Errorf("invalid chord %q: %w %q before final key", s, ErrUnknownKey, p)
		}
		if alias, ok := keyAliases[p]; ok {
			p = alias
		}
		c.Key = p
	}
	return c, nil
}

// MustParseChord is like ParseChord but panics on error. Intended for
// package-level chord tables.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the chord as "ctrl+a".
func (c Chord) String() string {
	if len(c.Modifiers) == 0 {
		return c.Key
	}
	return strings.Join(c.Modifiers, "+") + "+" + c.Key
}

// ChordStrings renders each chord with String.
func ChordStrings(chords []Chord) []string {
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.String()
	}
	return out
}
