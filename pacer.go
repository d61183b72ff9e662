package anew

import (
	"context"
	"time"
)

// Pacer runs a fallible unit of work like [Retrier], but paces it: a fixed
// delay separates a failed try from the next one, and the work may suspend
// itself mid-try with [PacedAttempt.Wait]. The pause applies only to plain
// retry signals on non-final tries; a try that ended in a handler-suppressed
// fault proceeds immediately, and the final try never pauses.
//
// Like Retrier, a Pacer is an immutable value and safe to share.
type Pacer[T any] struct {
	attempts int
	delay    time.Duration
	handler  func(*Fault[T]) Result[T]
	fallback any
}

// NewPacer returns a Pacer that will run the unit of work up to attempts
// times, pausing delay between a failed try and the next one. Attempts <= 0
// are treated as 1; delays <= 0 disable the pause.
func NewPacer[T any](attempts int, delay time.Duration) Pacer[T] {
	if attempts <= 0 {
		attempts = 1
	}
	if delay < 0 {
		delay = 0
	}
	return Pacer[T]{attempts: attempts, delay: delay}
}

// OnFault returns a copy of p with handler installed. The handler is
// invoked whenever the unit of work panics; it decides between suppressing
// the fault ([Fault.Retry]) and ending the run ([Fault.Stop]). Without a
// handler, panics from the unit of work propagate out of [Pacer.Run]
// unrecovered.
func (p Pacer[T]) OnFault(handler func(*Fault[T]) Result[T]) Pacer[T] {
	p.handler = handler
	return p
}

// Fallback returns a copy of p with v installed as the payload of the Err
// result returned once every try has been used up without a success or an
// explicit stop. The default fallback is nil.
func (p Pacer[T]) Fallback(v any) Pacer[T] {
	p.fallback = v
	return p
}

// Run invokes fn once per try until it signals success, a fault handler
// signals stop, ctx is cancelled during a pause, or the configured tries
// are used up.
//
// Run blocks the calling goroutine; at most one try executes at a time.
// Cancellation is observed only while the engine itself is pausing (and by
// [PacedAttempt.Wait] inside the work) — a try that is already executing
// always runs to its own return. Cancellation surfaces as an Err result
// carrying [context.Cause].
func (p Pacer[T]) Run(ctx context.Context, fn func(*PacedAttempt[T]) Result[T]) Result[T] {
	var t *time.Timer
	for i := 0; i < p.attempts; i++ {
		a := &PacedAttempt[T]{Attempt: Attempt[T]{Number: i + 1, max: p.attempts}, ctx: ctx}
		if p.handler == nil {
			if res := fn(a); res.IsOk() {
				return res
			}
		} else {
			res, cause, faulted := protect(fn, a)
			if faulted {
				if res = p.handler(&Fault[T]{Completed: i, Cause: cause}); res.IsErr() {
					return res
				}
				// handler-suppressed fault: straight to the next try
				continue
			}
			if res.IsOk() {
				return res
			}
		}
		if p.delay <= 0 || i == p.attempts-1 {
			continue
		}
		if t == nil {
			t = time.NewTimer(p.delay)
		} else {
			t.Reset(p.delay)
		}
		select {
		case <-ctx.Done():
			if !t.Stop() {
				<-t.C
			}
			return Err[T](context.Cause(ctx))
		case <-t.C:
		}
	}
	return Err[T](p.fallback)
}
