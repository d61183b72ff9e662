package anew

import "time"

// Config predeclares engine settings ahead of time so the same tuning can
// be applied to many engines. The zero value is valid and normalizes to a
// single try with no pause.
type Config struct {
	// Attempts is the maximum number of tries.
	// Values <= 0 are treated as 1.
	Attempts int
	// Delay is the fixed pause a [Pacer] inserts between a failed try and
	// the next one. Values <= 0 disable the pause. Ignored by [Retrier].
	Delay time.Duration
}

func (c Config) normalize() Config {
	if c.Attempts <= 0 {
		c.Attempts = 1
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	return c
}

// NewFromConfig returns a blocking [Retrier] with c's settings. The Delay
// field is ignored: a Retrier never pauses.
func NewFromConfig[T any](c Config) Retrier[T] {
	c = c.normalize()
	return Retrier[T]{attempts: c.Attempts}
}

// NewPacerFromConfig returns a [Pacer] with c's settings.
func NewPacerFromConfig[T any](c Config) Pacer[T] {
	c = c.normalize()
	return Pacer[T]{attempts: c.Attempts, delay: c.Delay}
}
