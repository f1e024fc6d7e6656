package input

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// recorder is an InputInjector that logs every call in order
type recorder struct {
	calls []string
	// layout maps characters to the codes ScanChar returns
	layout map[rune]uint16
	// failOn makes the first call whose log entry has this prefix fail
	failOn string
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failOn != "" && strings.HasPrefix(call, r.failOn) {
		return errors.New("injected failure")
	}
	return nil
}

func (r *recorder) MoveTo(x, y int) error {
	return r.record(fmt.Sprintf("move %d,%d", x, y))
}

func (r *recorder) MouseButton(b Button, pressed bool) error {
	if pressed {
		return r.record(b.String() + " down")
	}
	return r.record(b.String() + " up")
}

func (r *recorder) Wheel(delta int) error {
	return r.record(fmt.Sprintf("wheel %d", delta))
}

func (r *recorder) Key(vk uint16, pressed bool) error {
	if pressed {
		return r.record(fmt.Sprintf("key 0x%02X down", vk))
	}
	return r.record(fmt.Sprintf("key 0x%02X up", vk))
}

func (r *recorder) ScanChar(c rune) (uint16, bool) {
	r.calls = append(r.calls, fmt.Sprintf("scan %q", c))
	vk, ok := r.layout[c]
	return vk, ok
}

func (r *recorder) sleep(d time.Duration) {
	r.calls = append(r.calls, "sleep "+d.String())
}

func newTestDispatcher(r *recorder) *Dispatcher {
	return NewDispatcher(r, WithSleep(r.sleep))
}
