package internal

import "github.com/pkg/errors"

// The predicates themselves can never fail. The only failure is handing
// Collide something that isn't one of our shapes, which is a programming
// error deep inside a type switch. We panic there, and the public API recovers
// and converts the panic into an error.

type CollideError struct {
	cause error
}

func (e *CollideError) Error() string {
	return e.cause.Error()
}

func (e *CollideError) Cause() error {
	return e.cause
}

func (e *CollideError) Unwrap() error {
	return e.cause
}

// Panic with a CollideError.
func fatalf(format string, args ...interface{}) {
	panic(&CollideError{errors.Errorf(format, args...)})
}

// Convert a recovered CollideError into an error. Any other panic is
// propagated.
func HandleCollidePanicRecover(r interface{}) error {
	if r != nil {
		if collideError, ok := r.(*CollideError); ok {
			return collideError
		}
		panic(r)
	}
	return nil
}
