// Package input parses one input command and injects it through the native input API.
package input

import "errors"

// Kind is the command discriminant carried in the "type" field
type Kind string

const (
	KindNone       Kind = ""
	KindClick      Kind = "click"
	KindRightClick Kind = "right-click"
	KindScroll     Kind = "scroll"
	KindKeyDown    Kind = "keydown"
	KindText       Kind = "text"
	KindMouseDown  Kind = "mousedown"
	KindMouseUp    Kind = "mouseup"
)

// Button identifies a mouse button
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// Command is a single parsed instruction. Only the fields of its Kind are set.
type Command struct {
	Kind   Kind
	X, Y   int
	Button Button
	Delta  int
	Key    string
	Text   string
}

// InputInjector is the native input capability the dispatcher drives.
type InputInjector interface {
	// MoveTo places the pointer at absolute screen coordinates.
	MoveTo(x, y int) error
	MouseButton(b Button, pressed bool) error
	// Wheel emits one vertical wheel event with the given signed magnitude.
	Wheel(delta int) error
	Key(vk uint16, pressed bool) error
	// ScanChar maps a character to a virtual key code. ok is false when the
	// current keyboard layout has no key for it.
	ScanChar(r rune) (vk uint16, ok bool)
}

// ErrUnsupported is returned by the injector on platforms without native injection
var ErrUnsupported = errors.New("input injection not supported on this platform")

var _ InputInjector = (*Injector)(nil)
