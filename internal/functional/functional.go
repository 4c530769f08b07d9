// Package functional provides the generic traversal combinators (Map,
// ZipWith, Reduce) and the list-level numeric helpers built from them.
//
// Combinators never modify their input slices; every result is freshly
// allocated.
package functional

// Map returns a new slice where out[i] = fn(xs[i]).
// A nil or empty input yields an empty, non-nil slice.
func Map[T, U any](fn func(T) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// ZipWith returns a new slice where out[i] = fn(a[i], b[i]).
//
// The result has length min(len(a), len(b)). Extra elements of the longer
// input are ignored; a length mismatch is not an error.
func ZipWith[A, B, C any](fn func(A, B) C, a []A, b []B) []C {
	n := min(len(a), len(b))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// Reduce folds xs from left to right: acc = fn(acc, xs[i]) starting from init.
// An empty input returns init.
func Reduce[T, Acc any](fn func(Acc, T) Acc, xs []T, init Acc) Acc {
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

// Mapper returns fn lifted to operate on slices.
func Mapper[T, U any](fn func(T) U) func([]T) []U {
	return func(xs []T) []U {
		return Map(fn, xs)
	}
}

// ZipWither returns fn lifted to operate elementwise on a pair of slices.
func ZipWither[A, B, C any](fn func(A, B) C) func([]A, []B) []C {
	return func(a []A, b []B) []C {
		return ZipWith(fn, a, b)
	}
}

// Reducer returns a function that folds a slice with fn starting from init.
func Reducer[T, Acc any](fn func(Acc, T) Acc, init Acc) func([]T) Acc {
	return func(xs []T) Acc {
		return Reduce(fn, xs, init)
	}
}
