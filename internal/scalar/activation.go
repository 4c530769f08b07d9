package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Sigmoid computes 1 / (1 + e^-x).
//
// For x < 0 the equivalent form e^x / (1 + e^x) is used so that e^-x is
// never evaluated for large negative x.
func Sigmoid[T constraints.Float](x T) T {
	if x >= 0 {
		return T(1.0 / (1.0 + math.Exp(-float64(x))))
	}
	e := math.Exp(float64(x))
	return T(e / (1.0 + e))
}

// ReLU returns x for x > 0 and 0 otherwise.
func ReLU[T constraints.Float](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// Log returns the natural logarithm of x. Panics with a DomainError for x <= 0.
func Log[T constraints.Float](x T) T {
	if x <= 0 {
		domainPanic("log", float64(x), "logarithm of non-positive value")
	}
	return T(math.Log(float64(x)))
}

// Exp returns e^x. Large inputs overflow to +Inf.
func Exp[T constraints.Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Inv returns 1 / x. Panics with a DomainError when x == 0.
func Inv[T constraints.Float](x T) T {
	if x == 0 {
		domainPanic("inv", 0, "reciprocal of zero")
	}
	return 1 / x
}
