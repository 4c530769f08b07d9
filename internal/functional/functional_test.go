package functional

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradlab/internal/scalar"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(float64) float64
		input    []float64
		expected []float64
	}{
		{"identity", scalar.ID[float64], []float64{1, -2, 3.5}, []float64{1, -2, 3.5}},
		{"neg", scalar.Neg[float64], []float64{1, -2, 0}, []float64{-1, 2, 0}},
		{"relu", scalar.ReLU[float64], []float64{-1, 0, 2}, []float64{0, 0, 2}},
		{"empty", scalar.Neg[float64], []float64{}, []float64{}},
		{"nil", scalar.Neg[float64], nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.fn, tt.input)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapDoesNotMutateInput(t *testing.T) {
	input := []float64{1, 2, 3}
	out := Map(scalar.Neg[float64], input)
	assert.Equal(t, []float64{1, 2, 3}, input)

	out[0] = 100
	assert.Equal(t, 1.0, input[0], "output must not alias input")
}

func TestMapChangesType(t *testing.T) {
	got := Map(func(x float64) string { return strconv.FormatFloat(x, 'f', 1, 64) }, []float64{1, 2.5})
	assert.Equal(t, []string{"1.0", "2.5"}, got)
}

func TestZipWith(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected []float64
	}{
		{"equal length", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{5, 7, 9}},
		{"first shorter", []float64{1, 2}, []float64{1, 2, 3}, []float64{2, 4}},
		{"second shorter", []float64{1, 2, 3}, []float64{10}, []float64{11}},
		{"one empty", []float64{}, []float64{1, 2}, []float64{}},
		{"both nil", nil, nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZipWith(scalar.Add[float64], tt.a, tt.b)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ZipWith mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZipWithOrder(t *testing.T) {
	got := ZipWith(scalar.Sub[float64], []float64{10, 20}, []float64{1, 2})
	assert.Equal(t, []float64{9, 18}, got)

	pairs := ZipWith(func(s string, n int) string { return s + strconv.Itoa(n) },
		[]string{"a", "b", "c"}, []int{1, 2})
	assert.Equal(t, []string{"a1", "b2"}, pairs)
}

func TestReduce(t *testing.T) {
	assert.Equal(t, 10.0, Reduce(scalar.Add[float64], []float64{1, 2, 3, 4}, 0))
	assert.Equal(t, 24.0, Reduce(scalar.Mul[float64], []float64{1, 2, 3, 4}, 1))
	assert.Equal(t, 7.5, Reduce(scalar.Add[float64], nil, 7.5), "empty input returns init")
	assert.Equal(t, 4.0, Reduce(scalar.Max[float64], []float64{-1, 4, 2}, -100))
}

func TestReduceIsLeftFold(t *testing.T) {
	// ((0 - 1) - 2) - 3
	assert.Equal(t, -6.0, Reduce(scalar.Sub[float64], []float64{1, 2, 3}, 0))
	// ((64 / 2) / 4) / 8
	assert.Equal(t, 1.0, Reduce(scalar.Div[float64], []float64{2, 4, 8}, 64))

	trace := Reduce(func(acc string, x int) string { return "(" + acc + "," + strconv.Itoa(x) + ")" },
		[]int{1, 2, 3}, "s")
	assert.Equal(t, "(((s,1),2),3)", trace)
}

func TestCurriedForms(t *testing.T) {
	double := Mapper(func(x float64) float64 { return 2 * x })
	assert.Equal(t, []float64{2, 4}, double([]float64{1, 2}))

	mul := ZipWither(scalar.Mul[float64])
	assert.Equal(t, []float64{3, 8}, mul([]float64{1, 2}, []float64{3, 4, 5}))

	count := Reducer(func(n int, _ float64) int { return n + 1 }, 0)
	assert.Equal(t, 3, count([]float64{9, 9, 9}))
	assert.Equal(t, 0, count(nil))
}
