/*
Package anew runs a fallible unit of work repeatedly until it produces a
single definitive outcome: a success value, or a terminal failure.

Unlike error-driven retry loops, anew lets the work itself classify each try
by returning a [Result] signal, and routes panics raised by the work into a
separate fault handler that decides whether to suppress or escalate them.

# The Protocol

Every try receives a fresh [Attempt] context carrying the 1-based try
number. The work must return one of two signals built from it:

	| Signal    | Meaning                               |
	|-----------|---------------------------------------|
	| a.Ok(v)   | finished: the run succeeds with v     |
	| a.Retry() | failed: run me again, if tries remain |

If the work panics instead, and a fault handler was installed with OnFault,
the handler receives a [Fault] context holding the recovered value and must
return one of:

	| Signal    | Meaning                                  |
	|-----------|------------------------------------------|
	| f.Retry() | suppress the fault and continue looping  |
	| f.Stop(v) | abort: the run fails with v (or f.Cause) |

Without a handler the engine does not recover: the panic unwinds through
Run to the caller.

# Engines

Two engines share the protocol:
  - [Retrier] runs the work back to back on the calling goroutine, with no
    pauses and no suspension points.
  - [Pacer] inserts a fixed pause between failed tries and lets the work
    suspend itself with [PacedAttempt.Wait]; its Run takes a
    [context.Context] that can cut a pause short.

# Run Lifecycle

A run ends when one of the following occurs:
  - The work returns a success signal.
  - A fault handler returns a stop signal.
  - The configured tries are used up, yielding an Err [Result] carrying the
    configured fallback value.
  - The context is cancelled while a [Pacer] is pausing.

Exhaustion is reported as data, never by panicking: Run always returns the
terminal [Result].

# Sharing Configurations

Engines are immutable values: OnFault and Fallback return derived copies
and never modify their receiver. A configured engine can be stored, shared
between goroutines, and run concurrently; each Run is fully independent.
[Config] predeclares a set of settings for reuse across engines.
*/
package anew
