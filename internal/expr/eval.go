package expr

import (
	"context"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/sample"
)

// Vector evaluates p over n sample points. bind supplies one array of at
// least n values for every sample variable the program references. A program
// with no sample references is evaluated once and the scalar result is
// broadcast to length n; if that single evaluation fails there is no result
// at all. A sampled program instead records NaN for each point that fails
// numerically and keeps the rest.
func (s *Service) Vector(ctx context.Context, p *Program, bind map[string][]float64, n int) ([]float64, bool) {
	if p == nil {
		return nil, false
	}

	ectx := s.evalContext(len(p.sampleRefs))

	if len(p.sampleRefs) == 0 {
		v, ok := p.evalOnce(ectx)
		if !ok {
			ctxlog.FromContext(ctx).Debug("constant expression failed to evaluate", "src", p.src)
			return nil, false
		}
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = v
		}
		return vals, true
	}

	for _, name := range p.sampleRefs {
		if len(bind[name]) < n {
			panic("expr: sample variable " + name + " not bound")
		}
	}

	vals := make([]float64, n)
	undefined := 0
	for i := 0; i < n; i++ {
		if !bindPoint(ectx, p.sampleRefs, func(name string) float64 { return bind[name][i] }) {
			vals[i] = math.NaN()
			undefined++
			continue
		}
		v, ok := p.evalOnce(ectx)
		if !ok {
			v = math.NaN()
			undefined++
		}
		vals[i] = v
	}
	if undefined > 0 {
		ctxlog.FromContext(ctx).Debug("expression undefined at some sample points", "src", p.src, "undefined", undefined, "total", n)
	}
	return vals, true
}

// Surface evaluates p over a steps×steps grid. bind supplies one grid per
// referenced sample variable. Broadcast and NaN semantics match Vector.
func (s *Service) Surface(ctx context.Context, p *Program, bind map[string]*sample.Grid, steps int) (*sample.Grid, bool) {
	if p == nil {
		return nil, false
	}

	ectx := s.evalContext(len(p.sampleRefs))
	heights := sample.NewGrid(steps)

	if len(p.sampleRefs) == 0 {
		v, ok := p.evalOnce(ectx)
		if !ok {
			ctxlog.FromContext(ctx).Debug("constant expression failed to evaluate", "src", p.src)
			return nil, false
		}
		for i := 0; i < steps; i++ {
			for j := 0; j < steps; j++ {
				heights.Set(i, j, v)
			}
		}
		return heights, true
	}

	for _, name := range p.sampleRefs {
		if bind[name] == nil || bind[name].Steps() < steps {
			panic("expr: sample variable " + name + " not bound")
		}
	}

	undefined := 0
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			if !bindPoint(ectx, p.sampleRefs, func(name string) float64 { return bind[name].At(i, j) }) {
				heights.Set(i, j, math.NaN())
				undefined++
				continue
			}
			v, ok := p.evalOnce(ectx)
			if !ok {
				v = math.NaN()
				undefined++
			}
			heights.Set(i, j, v)
		}
	}
	if undefined > 0 {
		ctxlog.FromContext(ctx).Debug("expression undefined at some grid points", "src", p.src, "undefined", undefined, "total", steps*steps)
	}
	return heights, true
}

// Scalar evaluates a program that references no sample variables, for the
// interactive console. Programs with sample references report false.
func (s *Service) Scalar(ctx context.Context, p *Program) (float64, bool) {
	if p == nil || len(p.sampleRefs) > 0 {
		return 0, false
	}
	return p.evalOnce(s.evalContext(0))
}

// bindPoint installs the current point's value for every sample variable.
// It reports false when a bound value is NaN, which has no cty number
// representation: the point is undefined without evaluating.
func bindPoint(ectx *hcl.EvalContext, refs []string, at func(string) float64) bool {
	for _, name := range refs {
		v := at(name)
		if math.IsNaN(v) {
			return false
		}
		ectx.Variables[name] = cty.NumberFloatVal(v)
	}
	return true
}

// evalOnce evaluates the expression against the given context and coerces
// the result to a float64. It reports false for evaluation diagnostics, a
// null result, or a result not convertible to a number.
func (p *Program) evalOnce(ectx *hcl.EvalContext) (float64, bool) {
	v, diags := p.expr.Value(ectx)
	if diags.HasErrors() || v.IsNull() {
		return 0, false
	}
	if v.Type() != cty.Number {
		converted, err := convert.Convert(v, cty.Number)
		if err != nil {
			return 0, false
		}
		v = converted
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}
