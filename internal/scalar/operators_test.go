package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(x, y float64) float64
		x, y     float64
		expected float64
	}{
		{"mul", Mul[float64], 3, -4, -12},
		{"mul by zero", Mul[float64], 7.5, 0, 0},
		{"add", Add[float64], 1.5, 2.25, 3.75},
		{"add negative", Add[float64], -1, -2, -3},
		{"sub", Sub[float64], 10, 4, 6},
		{"div", Div[float64], 9, 3, 3},
		{"div fractional", Div[float64], 1, 4, 0.25},
		{"max first", Max[float64], 5, 2, 5},
		{"max second", Max[float64], -5, 2, 2},
		{"max tie", Max[float64], 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.x, tt.y))
		})
	}
}

func TestIDAndNeg(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 3.25, -1e9, math.MaxFloat64} {
		assert.Equal(t, x, ID(x))
		assert.Equal(t, -x, Neg(x))
		assert.Equal(t, x, Neg(Neg(x)))
	}
}

func TestComparison(t *testing.T) {
	assert.True(t, LT(1.0, 2.0))
	assert.False(t, LT(2.0, 1.0))
	assert.False(t, LT(2.0, 2.0), "LT must be strict")

	assert.True(t, EQ(2.0, 2.0))
	assert.False(t, EQ(2.0, 2.0000001))
	assert.True(t, EQ(0.0, math.Copysign(0, -1)))
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"identical", 1.0, 1.0, true},
		{"within tolerance", 1.0, 1.009, true},
		{"at tolerance", 1.0, 1.0 + CloseTolerance, false},
		{"outside tolerance", 1.0, 1.02, false},
		{"absolute not relative", 1e6, 1e6 + 0.5, false},
		{"negative", -3.0, -3.005, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsClose(tt.x, tt.y))
			assert.Equal(t, tt.expected, IsClose(tt.y, tt.x), "IsClose must be symmetric")
		})
	}
}

func TestIsCloseReflexive(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 1e-300, -1e300, math.Pi} {
		assert.True(t, IsClose(x, x), "IsClose(%g, %g)", x, x)
	}
	assert.True(t, IsClose(float32(2.5), float32(2.5)))
}

func TestDivByZero(t *testing.T) {
	assert.PanicsWithError(t, "div(0): division by zero", func() {
		Div(1.0, 0.0)
	})
}
