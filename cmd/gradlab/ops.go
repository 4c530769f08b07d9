package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/born-ml/gradlab/internal/functional"
	"github.com/born-ml/gradlab/internal/scalar"
)

var unaryOps = map[string]func(float64) float64{
	"id":      scalar.ID[float64],
	"neg":     scalar.Neg[float64],
	"sigmoid": scalar.Sigmoid[float64],
	"relu":    scalar.ReLU[float64],
	"log":     scalar.Log[float64],
	"exp":     scalar.Exp[float64],
	"inv":     scalar.Inv[float64],
}

var binaryOps = map[string]func(float64, float64) float64{
	"mul":          scalar.Mul[float64],
	"add":          scalar.Add[float64],
	"sub":          scalar.Sub[float64],
	"div":          scalar.Div[float64],
	"max":          scalar.Max[float64],
	"log_back":     scalar.LogBack[float64],
	"inv_back":     scalar.InvBack[float64],
	"relu_back":    scalar.ReLUBack[float64],
	"sigmoid_back": scalar.SigmoidBack[float64],
	"exp_back":     scalar.ExpBack[float64],
}

var predicateOps = map[string]func(float64, float64) bool{
	"lt":       scalar.LT[float64],
	"eq":       scalar.EQ[float64],
	"is_close": scalar.IsClose[float64],
}

type listHelper struct {
	arity int
	eval  func(lists [][]float64) []float64
}

var listHelpers = map[string]listHelper{
	"neg":  {1, func(l [][]float64) []float64 { return functional.NegList(l[0]) }},
	"add":  {2, func(l [][]float64) []float64 { return functional.AddLists(l[0], l[1]) }},
	"sum":  {1, func(l [][]float64) []float64 { return []float64{functional.Sum(l[0])} }},
	"prod": {1, func(l [][]float64) []float64 { return []float64{functional.Prod(l[0])} }},
}

// evalOp runs the named operator. Domain errors are returned, not raised.
func evalOp(name string, xs []float64, format func(float64) string) (string, error) {
	if fn, ok := unaryOps[name]; ok {
		if len(xs) != 1 {
			return "", fmt.Errorf("%s takes 1 argument, got %d", name, len(xs))
		}
		v, err := scalar.Try(func() float64 { return fn(xs[0]) })
		if err != nil {
			return "", err
		}
		return format(v), nil
	}
	if fn, ok := binaryOps[name]; ok {
		if len(xs) != 2 {
			return "", fmt.Errorf("%s takes 2 arguments, got %d", name, len(xs))
		}
		v, err := scalar.Try(func() float64 { return fn(xs[0], xs[1]) })
		if err != nil {
			return "", err
		}
		return format(v), nil
	}
	if fn, ok := predicateOps[name]; ok {
		if len(xs) != 2 {
			return "", fmt.Errorf("%s takes 2 arguments, got %d", name, len(xs))
		}
		return strconv.FormatBool(fn(xs[0], xs[1])), nil
	}
	return "", fmt.Errorf("unknown operator %q", name)
}

func evalList(name string, lists [][]float64, format func(float64) string) (string, error) {
	h, ok := listHelpers[name]
	if !ok {
		return "", fmt.Errorf("unknown list helper %q", name)
	}
	if len(lists) != h.arity {
		return "", fmt.Errorf("%s takes %d list(s), got %d", name, h.arity, len(lists))
	}
	return strings.Join(functional.Map(format, h.eval(lists)), ","), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
