package anew

// Retrier runs a fallible unit of work up to a fixed number of tries, back
// to back on the calling goroutine, with no pauses and no suspension
// points.
//
// A Retrier is an immutable value: [Retrier.OnFault] and [Retrier.Fallback]
// return derived copies and never modify their receiver, so a configured
// Retrier may be shared freely and every [Retrier.Run] is independent.
type Retrier[T any] struct {
	attempts int
	handler  func(*Fault[T]) Result[T]
	fallback any
}

// New returns a Retrier that will run the unit of work up to attempts
// times. Values <= 0 are treated as 1.
func New[T any](attempts int) Retrier[T] {
	if attempts <= 0 {
		attempts = 1
	}
	return Retrier[T]{attempts: attempts}
}

// OnFault returns a copy of r with handler installed. The handler is
// invoked whenever the unit of work panics; it decides between suppressing
// the fault ([Fault.Retry]) and ending the run ([Fault.Stop]). Without a
// handler, panics from the unit of work propagate out of [Retrier.Run]
// unrecovered.
func (r Retrier[T]) OnFault(handler func(*Fault[T]) Result[T]) Retrier[T] {
	r.handler = handler
	return r
}

// Fallback returns a copy of r with v installed as the payload of the Err
// result returned once every try has been used up without a success or an
// explicit stop. The default fallback is nil.
func (r Retrier[T]) Fallback(v any) Retrier[T] {
	r.fallback = v
	return r
}

// Run invokes fn once per try until it signals success, a fault handler
// signals stop, or the configured tries are used up. The returned Result
// is the success signal, the stop signal, or Err of the fallback on
// exhaustion; Run never returns a plain retry signal.
func (r Retrier[T]) Run(fn func(*Attempt[T]) Result[T]) Result[T] {
	for i := 0; i < r.attempts; i++ {
		a := &Attempt[T]{Number: i + 1, max: r.attempts}
		if r.handler == nil {
			if res := fn(a); res.IsOk() {
				return res
			}
			continue
		}
		res, cause, faulted := protect(fn, a)
		if faulted {
			if res = r.handler(&Fault[T]{Completed: i, Cause: cause}); res.IsErr() {
				return res
			}
			continue
		}
		if res.IsOk() {
			return res
		}
	}
	return Err[T](r.fallback)
}

// protect runs one try of fn behind a recover barrier, so a panic can be
// routed to the fault handler instead of unwinding the caller. Engines
// without a handler must call fn directly instead: recovery is only legal
// when someone is there to interpret the fault.
func protect[T, A any](fn func(*A) Result[T], a *A) (res Result[T], cause any, faulted bool) {
	defer func() {
		if v := recover(); v != nil {
			cause, faulted = v, true
		}
	}()
	return fn(a), nil, false
}
