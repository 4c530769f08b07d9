// Package scalar implements the elementary scalar operators and their
// derivative rules. Every function is pure and generic over float32/float64.
//
// Operators that have a restricted domain (Log, Inv, Div and the matching
// backward rules) panic with a *DomainError when called outside it. Use Try
// to turn that into an error value.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = 1e-2

// Mul returns x * y.
func Mul[T constraints.Float](x, y T) T {
	return x * y
}

// ID returns x unchanged.
func ID[T constraints.Float](x T) T {
	return x
}

// Add returns x + y.
func Add[T constraints.Float](x, y T) T {
	return x + y
}

// Sub returns x - y.
func Sub[T constraints.Float](x, y T) T {
	return x - y
}

// Neg returns -x.
func Neg[T constraints.Float](x T) T {
	return -x
}

// Div returns x / y. Panics with a DomainError when y == 0.
func Div[T constraints.Float](x, y T) T {
	if y == 0 {
		domainPanic("div", float64(y), "division by zero")
	}
	return x / y
}

// LT reports whether x < y.
func LT[T constraints.Float](x, y T) bool {
	return x < y
}

// EQ reports whether x == y exactly.
func EQ[T constraints.Float](x, y T) bool {
	return x == y
}

// Max returns the larger of x and y. On a tie both are equal, y is returned.
func Max[T constraints.Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// IsClose reports whether |x - y| < CloseTolerance.
// The tolerance is absolute, not relative to the magnitude of x or y.
func IsClose[T constraints.Float](x, y T) bool {
	return math.Abs(float64(x)-float64(y)) < CloseTolerance
}
