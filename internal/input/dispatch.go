package input

import (
	"fmt"
	"time"

	"inputctl/internal/config"
)

// Dispatcher turns a Command into calls on an InputInjector
type Dispatcher struct {
	inj    InputInjector
	timing config.Timing
	sleep  func(time.Duration)
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithTiming overrides the pacing delays
func WithTiming(t config.Timing) Option {
	return func(d *Dispatcher) { d.timing = t }
}

// WithSleep replaces time.Sleep, mainly so tests can observe pacing
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Dispatcher) { d.sleep = sleep }
}

// NewDispatcher creates a dispatcher driving inj
func NewDispatcher(inj InputInjector, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		inj:    inj,
		timing: config.DefaultTiming(),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch performs cmd. Commands of an unknown kind are a no-op, as are keys
// that do not resolve to a virtual key code. An injector error stops the
// command where it happened.
func (d *Dispatcher) Dispatch(cmd Command) error {
	switch cmd.Kind {
	case KindClick:
		return d.click(cmd.X, cmd.Y, ButtonLeft)
	case KindRightClick:
		return d.click(cmd.X, cmd.Y, ButtonRight)
	case KindMouseDown:
		return d.moveAndSet(cmd.X, cmd.Y, cmd.Button, true)
	case KindMouseUp:
		return d.moveAndSet(cmd.X, cmd.Y, cmd.Button, false)
	case KindScroll:
		// The wheel axis is inverted relative to the controller's delta.
		if err := d.inj.Wheel(-cmd.Delta); err != nil {
			return fmt.Errorf("scroll %d: %w", cmd.Delta, err)
		}
		return nil
	case KindKeyDown:
		return d.pressKey(cmd.Key)
	case KindText:
		for _, r := range cmd.Text {
			if err := d.pressKey(string(r)); err != nil {
				return err
			}
			d.sleep(d.timing.CharPacing)
		}
		return nil
	}
	return nil
}

func (d *Dispatcher) click(x, y int, b Button) error {
	if err := d.moveTo(x, y); err != nil {
		return err
	}
	if err := d.inj.MouseButton(b, true); err != nil {
		return fmt.Errorf("%s button down: %w", b, err)
	}
	if err := d.inj.MouseButton(b, false); err != nil {
		return fmt.Errorf("%s button up: %w", b, err)
	}
	return nil
}

func (d *Dispatcher) moveAndSet(x, y int, b Button, pressed bool) error {
	if err := d.moveTo(x, y); err != nil {
		return err
	}
	if err := d.inj.MouseButton(b, pressed); err != nil {
		return fmt.Errorf("%s button (pressed=%v): %w", b, pressed, err)
	}
	return nil
}

// moveTo moves the pointer and waits for the move to register
func (d *Dispatcher) moveTo(x, y int) error {
	if err := d.inj.MoveTo(x, y); err != nil {
		return fmt.Errorf("move pointer to (%d, %d): %w", x, y, err)
	}
	d.sleep(d.timing.MoveSettle)
	return nil
}

func (d *Dispatcher) pressKey(key string) error {
	vk, ok := ResolveKey(key, d.inj.ScanChar)
	if !ok {
		return nil
	}
	if err := d.inj.Key(vk, true); err != nil {
		return fmt.Errorf("key 0x%02X down: %w", vk, err)
	}
	if err := d.inj.Key(vk, false); err != nil {
		return fmt.Errorf("key 0x%02X up: %w", vk, err)
	}
	return nil
}
