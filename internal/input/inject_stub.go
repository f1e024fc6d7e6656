//go:build !windows

package input

// Stub implementation for platforms without a native injector

// Injector represents a stub input injector
type Injector struct{}

// NewInjector creates a new stub injector
func NewInjector() *Injector {
	return &Injector{}
}

// MoveTo moves the cursor (stub)
func (i *Injector) MoveTo(x, y int) error {
	return ErrUnsupported
}

// MouseButton injects a mouse button event (stub)
func (i *Injector) MouseButton(b Button, pressed bool) error {
	return ErrUnsupported
}

// Wheel injects a wheel event (stub)
func (i *Injector) Wheel(delta int) error {
	return ErrUnsupported
}

// Key injects a keyboard event (stub)
func (i *Injector) Key(vk uint16, pressed bool) error {
	return ErrUnsupported
}

// ScanChar never resolves a character (stub)
func (i *Injector) ScanChar(r rune) (uint16, bool) {
	return 0, false
}
