//go:build windows

package input

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Windows implementation of input injection using the legacy user32 event API

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procMouseEvent   = user32.NewProc("mouse_event")
	procKeybdEvent   = user32.NewProc("keybd_event")
	procVkKeyScanW   = user32.NewProc("VkKeyScanW")
)

const (
	MOUSEEVENTF_LEFTDOWN  = 0x0002
	MOUSEEVENTF_LEFTUP    = 0x0004
	MOUSEEVENTF_RIGHTDOWN = 0x0008
	MOUSEEVENTF_RIGHTUP   = 0x0010
	MOUSEEVENTF_WHEEL     = 0x0800
	KEYEVENTF_KEYUP       = 0x0002
)

// Injector injects input into the interactive desktop session
type Injector struct{}

// NewInjector creates a new Windows injector
func NewInjector() *Injector {
	return &Injector{}
}

func (i *Injector) load() error {
	if err := user32.Load(); err != nil {
		return fmt.Errorf("load user32.dll: %w", err)
	}
	return nil
}

// MoveTo moves the cursor to absolute screen coordinates
func (i *Injector) MoveTo(x, y int) error {
	if err := i.load(); err != nil {
		return err
	}
	ret, _, callErr := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if ret == 0 {
		return fmt.Errorf("SetCursorPos: %w", callErr)
	}
	return nil
}

// MouseButton presses or releases a mouse button at the current cursor position
func (i *Injector) MouseButton(b Button, pressed bool) error {
	var flags uint32
	switch {
	case b == ButtonLeft && pressed:
		flags = MOUSEEVENTF_LEFTDOWN
	case b == ButtonLeft:
		flags = MOUSEEVENTF_LEFTUP
	case b == ButtonRight && pressed:
		flags = MOUSEEVENTF_RIGHTDOWN
	case b == ButtonRight:
		flags = MOUSEEVENTF_RIGHTUP
	default:
		return fmt.Errorf("unsupported mouse button %d", b)
	}
	return i.mouseEvent(flags, 0)
}

// Wheel emits a vertical wheel event. Positive delta rotates away from the user.
func (i *Injector) Wheel(delta int) error {
	return i.mouseEvent(MOUSEEVENTF_WHEEL, uint32(int32(delta)))
}

func (i *Injector) mouseEvent(flags, data uint32) error {
	if err := i.load(); err != nil {
		return err
	}
	// mouse_event returns nothing, so there is no failure to check.
	procMouseEvent.Call(uintptr(flags), 0, 0, uintptr(data), 0)
	return nil
}

// Key presses or releases a virtual key
func (i *Injector) Key(vk uint16, pressed bool) error {
	if err := i.load(); err != nil {
		return err
	}
	var flags uintptr
	if !pressed {
		flags = KEYEVENTF_KEYUP
	}
	procKeybdEvent.Call(uintptr(byte(vk)), 0, flags, 0)
	return nil
}

// ScanChar translates a character to a virtual key code for the active keyboard layout.
// Shift state in the high byte is dropped.
func (i *Injector) ScanChar(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF || i.load() != nil {
		return 0, false
	}
	ret, _, _ := procVkKeyScanW.Call(uintptr(uint16(r)))
	if int16(ret) == -1 {
		return 0, false
	}
	return uint16(ret) & 0xFF, true
}
