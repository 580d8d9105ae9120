package expr

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// num wraps a float64 as a cty value. NaN is not representable as a cty
// number (big.Float has no NaN), so a NaN result becomes an error, which the
// evaluation loop records as a NaN sample point.
func num(f float64) (cty.Value, error) {
	if math.IsNaN(f) {
		return cty.NilVal, fmt.Errorf("result is not a number")
	}
	return cty.NumberFloatVal(f), nil
}

func arg(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

// unaryFunc adapts a func(float64) float64 from the math package.
func unaryFunc(impl func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return num(impl(arg(args[0])))
		},
	})
}

// binaryFunc adapts a func(float64, float64) float64.
func binaryFunc(impl func(float64, float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "a", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return num(impl(arg(args[0]), arg(args[1])))
		},
	})
}

var modFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "a", Type: cty.Number},
		{Name: "b", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		b := arg(args[1])
		if b == 0 {
			return cty.NilVal, fmt.Errorf("mod: division by zero")
		}
		return num(math.Mod(arg(args[0]), b))
	},
})

var clampFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x", Type: cty.Number},
		{Name: "lo", Type: cty.Number},
		{Name: "hi", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		x, lo, hi := arg(args[0]), arg(args[1]), arg(args[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		return num(math.Min(math.Max(x, lo), hi))
	},
})

// baseFunctions returns the math function table shared by every compiled
// program. NaN-capable functions go through num; the remainder come from the
// cty stdlib directly.
func baseFunctions() map[string]function.Function {
	return map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"sign":  stdlib.SignumFunc,

		"sin":   unaryFunc(math.Sin),
		"cos":   unaryFunc(math.Cos),
		"tan":   unaryFunc(math.Tan),
		"asin":  unaryFunc(math.Asin),
		"acos":  unaryFunc(math.Acos),
		"atan":  unaryFunc(math.Atan),
		"sinh":  unaryFunc(math.Sinh),
		"cosh":  unaryFunc(math.Cosh),
		"tanh":  unaryFunc(math.Tanh),
		"exp":   unaryFunc(math.Exp),
		"log":   unaryFunc(math.Log),
		"log10": unaryFunc(math.Log10),
		"sqrt":  unaryFunc(math.Sqrt),
		"round": unaryFunc(math.Round),

		"atan2": binaryFunc(math.Atan2),
		"pow":   binaryFunc(math.Pow),
		"mod":   modFunc,
		"clamp": clampFunc,
	}
}

// baseConstants returns the ambient constants every evaluation environment
// starts from. Document vars may shadow them.
func baseConstants() map[string]cty.Value {
	return map[string]cty.Value{
		"pi":  cty.NumberFloatVal(math.Pi),
		"tau": cty.NumberFloatVal(2 * math.Pi),
		"e":   cty.NumberFloatVal(math.E),
		"phi": cty.NumberFloatVal(math.Phi),
	}
}
