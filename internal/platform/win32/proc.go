//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	getWindowTextW    = user32.NewProc("GetWindowTextW")
	postMessageW      = user32.NewProc("PostMessageW")
	mapVirtualKeyW    = user32.NewProc("MapVirtualKeyW")
	attachThreadInput = user32.NewProc("AttachThreadInput")
	getKeyboardState  = user32.NewProc("GetKeyboardState")
	setKeyboardState  = user32.NewProc("SetKeyboardState")
)

const (
	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	mapvkVkToVsc = 0

	keyPressed = 0x80
)
