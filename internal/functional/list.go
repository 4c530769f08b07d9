package functional

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/gradlab/internal/scalar"
)

// NegList negates every element: Map(Neg, xs).
func NegList[T constraints.Float](xs []T) []T {
	return Mapper(scalar.Neg[T])(xs)
}

// AddLists adds a and b elementwise: ZipWith(Add, a, b).
// The result is truncated to the shorter input.
func AddLists[T constraints.Float](a, b []T) []T {
	return ZipWither(scalar.Add[T])(a, b)
}

// Sum returns Reduce(Add, xs, 0).
func Sum[T constraints.Float](xs []T) T {
	return Reducer(scalar.Add[T], 0)(xs)
}

// Prod returns Reduce(Mul, xs, 1).
func Prod[T constraints.Float](xs []T) T {
	return Reducer(scalar.Mul[T], 1)(xs)
}
