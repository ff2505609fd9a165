// Package win32 provides Windows platform support using the Win32 window
// messaging API. Window enumeration goes through EnumWindows and key-chords
// are posted straight to the target window's message queue, so the window
// does not need to be in the foreground.
//
// Only the virtual-key table builds on other operating systems.
package win32
