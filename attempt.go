package anew

import (
	"context"
	"fmt"
	"time"
)

// Attempt is the context handed to the unit of work on every try. It
// exposes the current try number and the two signal constructors the work
// returns from: [Attempt.Retry] to request another try, [Attempt.Ok] to
// finish the run.
//
// An Attempt is created fresh for each try and must not be retained beyond
// the callback invocation.
type Attempt[T any] struct {
	// Number is the 1-based number of the current try.
	Number int

	max int
}

// Retry returns the signal requesting another try. The engine treats it as
// "no result yet, keep looping" and never surfaces it to the caller.
func (a *Attempt[T]) Retry() Result[T] {
	return Err[T](nil)
}

// Ok returns the terminal success signal. The optional value becomes the
// run's result; with no value, the zero value of T is carried.
func (a *Attempt[T]) Ok(value ...T) Result[T] {
	if len(value) == 0 {
		var zero T
		return Ok(zero)
	}
	return Ok(value[0])
}

// String implements fmt.Stringer, printing "try N" or "try N/M" when the
// engine's try limit is known.
func (a *Attempt[T]) String() string {
	if a.max <= 0 {
		return fmt.Sprintf("try %d", a.Number)
	}
	return fmt.Sprintf("try %d/%d", a.Number, a.max)
}

// Fault is the context handed to the fault handler when the unit of work
// panics. It carries the recovered value and the number of tries that had
// fully completed when the panic occurred, and the two signal constructors
// the handler returns from: [Fault.Retry] to suppress the fault,
// [Fault.Stop] to end the run with it.
type Fault[T any] struct {
	// Completed is the count of tries fully completed before the faulting
	// one: 0 when the first try panics, 1 when the second does, and so on.
	Completed int
	// Cause is the recovered panic value, exactly as thrown. The engine
	// never inspects it.
	Cause any
}

// Retry returns the signal suppressing the fault: the engine continues
// with the next try as if the work had requested a plain retry.
func (f *Fault[T]) Retry() Result[T] {
	var zero T
	return Ok(zero)
}

// Stop returns the terminal failure signal. The run ends immediately with
// an Err result carrying the given cause, or the original panic value when
// no cause is given.
func (f *Fault[T]) Stop(cause ...any) Result[T] {
	if len(cause) == 0 {
		return Err[T](f.Cause)
	}
	return Err[T](cause[0])
}

// PacedAttempt is the [Pacer]'s attempt context. In addition to the plain
// [Attempt] surface it exposes the run's context and a cancellable pause
// for use inside the unit of work.
type PacedAttempt[T any] struct {
	Attempt[T]

	ctx context.Context
}

// Context returns the context the run was started with.
func (a *PacedAttempt[T]) Context() context.Context {
	return a.ctx
}

// Wait pauses the current try for d without blocking other goroutines.
// Durations <= 0 return immediately. If the run's context is cancelled
// before d elapses, Wait returns early with [context.Cause]; otherwise it
// returns nil after the pause.
func (a *PacedAttempt[T]) Wait(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	select {
	case <-a.ctx.Done():
		if !t.Stop() {
			<-t.C
		}
		return context.Cause(a.ctx)
	case <-t.C:
		return nil
	}
}
