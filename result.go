package anew

import "fmt"

// Result is the outcome of a single try or of an entire run. It is a tagged
// union: an Ok result carries a success value of type T, an Err result
// carries an opaque failure payload.
//
// Results double as the protocol's control signals: the context methods
// ([Attempt.Retry], [Attempt.Ok], [Fault.Retry], [Fault.Stop]) all return
// Results that the engines inspect to decide whether to keep looping.
// Results are immutable values.
type Result[T any] struct {
	ok    bool
	value T
	fault any
}

// Ok returns a success Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: true, value: v}
}

// Err returns a failure Result carrying fault. The payload is deliberately
// untyped: the engines never inspect it, and fault handlers are expected to
// do their own discrimination with type assertions or [errors.As].
func Err[T any](fault any) Result[T] {
	return Result[T]{fault: fault}
}

// IsOk reports whether r is the success variant.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is the failure variant.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. It panics with a [*UnwrapError] if r is
// the failure variant; check [Result.IsOk] first when the variant is not
// already known.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(errUnwrap(true, r.fault))
	}
	return r.value
}

// UnwrapErr returns the failure payload. It panics with a [*UnwrapError] if
// r is the success variant.
func (r Result[T]) UnwrapErr() any {
	if r.ok {
		panic(errUnwrap(false, r.value))
	}
	return r.fault
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.fault)
}
