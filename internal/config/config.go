// Package config holds the compiled-in settings for input injection.
package config

import "time"

// Timing contains the pacing delays used while injecting input
type Timing struct {
	// MoveSettle is the wait between a pointer move and the button events that follow it
	MoveSettle time.Duration

	// CharPacing is the wait after each character of a text burst
	CharPacing time.Duration
}

// DefaultTiming returns the delays the native input queue is known to tolerate
func DefaultTiming() Timing {
	return Timing{
		MoveSettle: 10 * time.Millisecond,
		CharPacing: 10 * time.Millisecond,
	}
}
