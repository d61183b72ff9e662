package anew

import (
	"errors"
	"fmt"
)

// ErrUnwrapMismatch matches, via [errors.Is], the panic value raised when a
// [Result] is unwrapped through the wrong variant.
var ErrUnwrapMismatch = errors.New("result unwrapped through wrong variant")

// UnwrapError is the panic payload of a variant-mismatched unwrap. It
// records which accessor was misused and the payload the Result actually
// held, for inspection after a recover.
type UnwrapError struct {
	// WantOk is true when Unwrap was called on an Err result, false when
	// UnwrapErr was called on an Ok result.
	WantOk bool
	// Held is the payload of the variant the Result actually held.
	Held any
}

// Error implements the error interface.
func (ue *UnwrapError) Error() string {
	if ue.WantOk {
		return fmt.Sprintf("Unwrap called on Err(%v)", ue.Held)
	}
	return fmt.Sprintf("UnwrapErr called on Ok(%v)", ue.Held)
}

// Unwrap allows a *UnwrapError to work with [errors.Is].
func (ue *UnwrapError) Unwrap() error {
	return ErrUnwrapMismatch
}

// errUnwrap is a helper to create a *UnwrapError.
func errUnwrap(wantOk bool, held any) *UnwrapError {
	return &UnwrapError{WantOk: wantOk, Held: held}
}
