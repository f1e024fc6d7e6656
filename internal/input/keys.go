package input

import "unicode/utf8"

// Windows virtual key codes for the named keys a controller can send.
// Reference: https://learn.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	VK_BACK    = 0x08
	VK_TAB     = 0x09
	VK_RETURN  = 0x0D
	VK_SHIFT   = 0x10
	VK_CONTROL = 0x11
	VK_MENU    = 0x12
	VK_ESCAPE  = 0x1B
	VK_SPACE   = 0x20
	VK_PRIOR   = 0x21
	VK_NEXT    = 0x22
	VK_END     = 0x23
	VK_HOME    = 0x24
	VK_LEFT    = 0x25
	VK_UP      = 0x26
	VK_RIGHT   = 0x27
	VK_DOWN    = 0x28
	VK_DELETE  = 0x2E
)

// namedKeys uses the browser KeyboardEvent.key names the controller forwards
var namedKeys = map[string]uint16{
	"Enter":      VK_RETURN,
	"Backspace":  VK_BACK,
	"Tab":        VK_TAB,
	"Escape":     VK_ESCAPE,
	"Space":      VK_SPACE,
	" ":          VK_SPACE,
	"ArrowLeft":  VK_LEFT,
	"ArrowUp":    VK_UP,
	"ArrowRight": VK_RIGHT,
	"ArrowDown":  VK_DOWN,
	"Delete":     VK_DELETE,
	"Control":    VK_CONTROL,
	"Shift":      VK_SHIFT,
	"Alt":        VK_MENU,
	"Home":       VK_HOME,
	"End":        VK_END,
	"PageUp":     VK_PRIOR,
	"PageDown":   VK_NEXT,
}

// ResolveKey maps a key name or a single character to a virtual key code.
// Named keys never go through scan. ok is false when the key has no code,
// in which case callers skip it.
func ResolveKey(key string, scan func(rune) (uint16, bool)) (uint16, bool) {
	if vk, ok := namedKeys[key]; ok {
		return vk, true
	}
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	vk, ok := scan(r)
	if !ok || vk == 0 {
		return 0, false
	}
	return vk, true
}
