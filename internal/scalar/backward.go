package scalar

import "golang.org/x/exp/constraints"

// Backward rules. Each takes the forward input x and the upstream gradient d
// and returns d * f'(x).

// LogBack returns d / x, the gradient of Log at x.
// Panics with a DomainError when x == 0.
func LogBack[T constraints.Float](x, d T) T {
	if x == 0 {
		domainPanic("log_back", 0, "division by zero")
	}
	return d / x
}

// InvBack returns -d / x², the gradient of Inv at x.
// Panics with a DomainError when x == 0.
func InvBack[T constraints.Float](x, d T) T {
	if x == 0 {
		domainPanic("inv_back", 0, "division by zero")
	}
	return -d / (x * x)
}

// ReLUBack returns d for x > 0 and 0 otherwise.
// The sub-gradient at exactly x == 0 is 0.
func ReLUBack[T constraints.Float](x, d T) T {
	if x > 0 {
		return d
	}
	return 0
}

// SigmoidBack returns d * σ(x) * (1 - σ(x)).
func SigmoidBack[T constraints.Float](x, d T) T {
	s := Sigmoid(x)
	return d * s * (1 - s)
}

// ExpBack returns d * e^x.
func ExpBack[T constraints.Float](x, d T) T {
	return d * Exp(x)
}
