// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional provides generic Map, ZipWith and Reduce combinators
// and the list helpers built from them.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradlab/functional"
//	    "github.com/born-ml/gradlab/scalar"
//	)
//
//	acts := functional.Map(scalar.ReLU[float64], []float64{-1, 2})  // [0 2]
//	total := functional.Sum(acts)                                    // 2
//
// ZipWith truncates to the shorter input instead of returning an error.
package functional

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/gradlab/internal/functional"
)

// Combinators

// Map returns a new slice with fn applied to every element.
func Map[T, U any](fn func(T) U, xs []T) []U {
	return functional.Map(fn, xs)
}

// ZipWith combines a and b elementwise; the result has the shorter length.
func ZipWith[A, B, C any](fn func(A, B) C, a []A, b []B) []C {
	return functional.ZipWith(fn, a, b)
}

// Reduce left-folds xs with fn starting from init.
func Reduce[T, Acc any](fn func(Acc, T) Acc, xs []T, init Acc) Acc {
	return functional.Reduce(fn, xs, init)
}

// Mapper lifts fn to slices.
func Mapper[T, U any](fn func(T) U) func([]T) []U {
	return functional.Mapper(fn)
}

// ZipWither lifts fn to pairs of slices.
func ZipWither[A, B, C any](fn func(A, B) C) func([]A, []B) []C {
	return functional.ZipWither(fn)
}

// Reducer returns a fold over slices with fixed fn and init.
func Reducer[T, Acc any](fn func(Acc, T) Acc, init Acc) func([]T) Acc {
	return functional.Reducer(fn, init)
}

// List helpers

// NegList negates every element.
func NegList[T constraints.Float](xs []T) []T { return functional.NegList(xs) }

// AddLists adds two slices elementwise.
func AddLists[T constraints.Float](a, b []T) []T { return functional.AddLists(a, b) }

// Sum returns the sum of xs (0 for an empty slice).
func Sum[T constraints.Float](xs []T) T { return functional.Sum(xs) }

// Prod returns the product of xs (1 for an empty slice).
func Prod[T constraints.Float](xs []T) T { return functional.Prod(xs) }
