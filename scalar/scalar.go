// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the elementary scalar operators and their
// derivative ("backward") rules.
//
// Every operator is generic over float32 and float64:
//
//	y := scalar.Sigmoid(0.3)
//	dx := scalar.SigmoidBack(0.3, 1.0) // gradient of sigmoid at 0.3
//
// Log, Inv, Div, LogBack and InvBack panic with a *DomainError outside their
// domain. Wrap the call in Try to receive an error instead:
//
//	y, err := scalar.Try(func() float64 { return scalar.Log(x) })
package scalar

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/gradlab/internal/scalar"
)

// CloseTolerance is the absolute tolerance used by IsClose.
const CloseTolerance = scalar.CloseTolerance

// DefaultEpsilon is the default CentralDifference step.
const DefaultEpsilon = scalar.DefaultEpsilon

// ErrDomain is wrapped by every DomainError.
var ErrDomain = scalar.ErrDomain

// DomainError reports an argument outside an operator's domain.
type DomainError = scalar.DomainError

// Try runs fn and converts a DomainError panic into an error.
func Try[T any](fn func() T) (T, error) {
	return scalar.Try(fn)
}

// Arithmetic and comparison

// Mul returns x * y.
func Mul[T constraints.Float](x, y T) T { return scalar.Mul(x, y) }

// ID returns x.
func ID[T constraints.Float](x T) T { return scalar.ID(x) }

// Add returns x + y.
func Add[T constraints.Float](x, y T) T { return scalar.Add(x, y) }

// Sub returns x - y.
func Sub[T constraints.Float](x, y T) T { return scalar.Sub(x, y) }

// Neg returns -x.
func Neg[T constraints.Float](x T) T { return scalar.Neg(x) }

// Div returns x / y. Panics with a DomainError when y == 0.
func Div[T constraints.Float](x, y T) T { return scalar.Div(x, y) }

// LT reports whether x < y.
func LT[T constraints.Float](x, y T) bool { return scalar.LT(x, y) }

// EQ reports whether x == y.
func EQ[T constraints.Float](x, y T) bool { return scalar.EQ(x, y) }

// Max returns the larger of x and y.
func Max[T constraints.Float](x, y T) T { return scalar.Max(x, y) }

// IsClose reports whether |x - y| < CloseTolerance.
func IsClose[T constraints.Float](x, y T) bool { return scalar.IsClose(x, y) }

// Activations and transcendental functions

// Sigmoid computes the logistic function using a numerically stable form.
func Sigmoid[T constraints.Float](x T) T { return scalar.Sigmoid(x) }

// ReLU returns max(0, x).
func ReLU[T constraints.Float](x T) T { return scalar.ReLU(x) }

// Log returns ln(x). Panics with a DomainError for x <= 0.
func Log[T constraints.Float](x T) T { return scalar.Log(x) }

// Exp returns e^x.
func Exp[T constraints.Float](x T) T { return scalar.Exp(x) }

// Inv returns 1 / x. Panics with a DomainError when x == 0.
func Inv[T constraints.Float](x T) T { return scalar.Inv(x) }

// Backward rules

// LogBack returns d / x.
func LogBack[T constraints.Float](x, d T) T { return scalar.LogBack(x, d) }

// InvBack returns -d / x².
func InvBack[T constraints.Float](x, d T) T { return scalar.InvBack(x, d) }

// ReLUBack returns d if x > 0, else 0.
func ReLUBack[T constraints.Float](x, d T) T { return scalar.ReLUBack(x, d) }

// SigmoidBack returns d * σ(x) * (1 - σ(x)).
func SigmoidBack[T constraints.Float](x, d T) T { return scalar.SigmoidBack(x, d) }

// ExpBack returns d * e^x.
func ExpBack[T constraints.Float](x, d T) T { return scalar.ExpBack(x, d) }

// CentralDifference approximates f'(x) numerically.
func CentralDifference[T constraints.Float](f func(T) T, x T, eps float64) T {
	return scalar.CentralDifference(f, x, eps)
}
