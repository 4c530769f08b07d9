package scalar

import "golang.org/x/exp/constraints"

// DefaultEpsilon is the step used by CentralDifference when eps <= 0.
const DefaultEpsilon = 1e-6

// CentralDifference approximates f'(x) with (f(x+eps) - f(x-eps)) / (2*eps).
//
// A non-positive eps selects DefaultEpsilon. float32 callers should pass a
// larger step (around 1e-3); x±1e-6 rounds back to x in single precision.
func CentralDifference[T constraints.Float](f func(T) T, x T, eps float64) T {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	xf := float64(x)
	plus := float64(f(T(xf + eps)))
	minus := float64(f(T(xf - eps)))
	return T((plus - minus) / (2 * eps))
}
