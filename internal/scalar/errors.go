package scalar

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDomain is the sentinel wrapped by every DomainError.
var ErrDomain = errors.New("argument outside function domain")

// DomainError reports an argument outside an operator's domain,
// e.g. Log(0) or Inv(0).
type DomainError struct {
	Op     string  // Operator name (e.g. "log", "inv_back")
	Arg    float64 // Offending argument
	Reason string  // Additional details
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %s", e.Op, e.Arg, e.Reason)
}

// Unwrap returns ErrDomain so callers can match with errors.Is.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainPanic(op string, arg float64, reason string) {
	panic(&DomainError{Op: op, Arg: arg, Reason: reason})
}

// Try runs fn and converts a DomainError panic into a returned error.
// Any other panic is re-raised unchanged.
//
// Example:
//
//	y, err := scalar.Try(func() float64 { return scalar.Log(x) })
//	if errors.Is(err, scalar.ErrDomain) {
//	    // x <= 0
//	}
func Try[T any](fn func() T) (v T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		de, ok := r.(*DomainError)
		if !ok {
			panic(r)
		}
		err = errors.WithStack(de)
	}()
	return fn(), nil
}
