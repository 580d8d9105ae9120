package expr

import (
	"context"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/vk/surfgrid/internal/ctxlog"
)

// Program is a compiled, checked expression. It is opaque to the plotting
// core, which only hands it back to the Service that produced it.
type Program struct {
	src        string
	expr       hclsyntax.Expression
	sampleRefs []string // referenced variables bound per sample point
}

// Source returns the original expression text.
func (p *Program) Source() string { return p.src }

// Service compiles expressions against a fixed ambient environment and
// evaluates them over sample arrays. The ambient environment is snapshotted
// at construction; evaluations extend a copy of it and never mutate it.
type Service struct {
	funcs map[string]function.Function
	base  map[string]cty.Value
}

// NewService builds a Service whose ambient environment is the builtin
// constants overlaid with the given document variables. ambient may be nil.
func NewService(ambient map[string]cty.Value) *Service {
	base := baseConstants()
	for name, val := range ambient {
		base[name] = val
	}
	return &Service{funcs: baseFunctions(), base: base}
}

// FunctionNames returns the sorted names of all callable functions, for
// console completion and diagnostics.
func (s *Service) FunctionNames() []string {
	names := make([]string, 0, len(s.funcs))
	for name := range s.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile parses and checks src. sampleVars names the variables that will be
// bound per sample point at evaluation time (for example "t", or "x" and
// "y"). Compile reports false for an empty source, a parse failure, a
// reference to an unknown variable, or a call to an unknown function; all of
// these mean "nothing to plot", never an error.
func (s *Service) Compile(ctx context.Context, src string, sampleVars ...string) (*Program, bool) {
	logger := ctxlog.FromContext(ctx)

	if strings.TrimSpace(src) == "" {
		return nil, false
	}

	parsed, diags := hclsyntax.ParseExpression([]byte(src), "<function>", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		logger.Debug("expression failed to parse", "src", src, "error", diags.Error())
		return nil, false
	}

	declared := make(map[string]bool, len(sampleVars))
	for _, name := range sampleVars {
		declared[name] = true
	}

	var sampleRefs []string
	seen := make(map[string]bool)
	for _, traversal := range parsed.Variables() {
		name := traversal.RootName()
		if seen[name] {
			continue
		}
		seen[name] = true
		if declared[name] {
			sampleRefs = append(sampleRefs, name)
			continue
		}
		if _, ok := s.base[name]; !ok {
			logger.Debug("expression references unknown variable", "src", src, "variable", name)
			return nil, false
		}
	}
	sort.Strings(sampleRefs)

	if bad, ok := s.unknownCall(parsed); !ok {
		logger.Debug("expression calls unknown function", "src", src, "function", bad)
		return nil, false
	}

	return &Program{src: src, expr: parsed, sampleRefs: sampleRefs}, true
}

// unknownCall walks the syntax tree looking for calls to functions missing
// from the table. Variables() does not surface calls, so this needs its own
// traversal.
func (s *Service) unknownCall(expr hclsyntax.Expression) (string, bool) {
	bad := ""
	hclsyntax.VisitAll(expr, func(node hclsyntax.Node) hcl.Diagnostics {
		if call, isCall := node.(*hclsyntax.FunctionCallExpr); isCall {
			if _, known := s.funcs[call.Name]; !known && bad == "" {
				bad = call.Name
			}
		}
		return nil
	})
	return bad, bad == ""
}

// evalContext builds a fresh evaluation context: a copy of the ambient
// snapshot with headroom for the per-point sample bindings.
func (s *Service) evalContext(extra int) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(s.base)+extra)
	for name, val := range s.base {
		vars[name] = val
	}
	return &hcl.EvalContext{Variables: vars, Functions: s.funcs}
}
