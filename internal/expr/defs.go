package expr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Definition is one named document variable together with its HCL
// expression.
type Definition struct {
	Name string
	Expr hcl.Expression
}

// EvalDefinitions evaluates document variable definitions in order against
// the builtin constants and functions, extending the environment as it goes
// so later definitions can reference earlier ones. Unlike plot expressions,
// a broken definition is a configuration error, not absence.
func EvalDefinitions(defs []Definition) (map[string]cty.Value, error) {
	return EvalDefinitionsWith(defs, nil)
}

// EvalDefinitionsWith is EvalDefinitions with per-name overrides. An
// overridden definition takes the override value instead of evaluating, so
// later definitions derived from it follow; override names no definition
// carries are appended to the result.
func EvalDefinitionsWith(defs []Definition, overrides map[string]cty.Value) (map[string]cty.Value, error) {
	env := baseConstants()
	ectx := &hcl.EvalContext{Variables: env, Functions: baseFunctions()}

	out := make(map[string]cty.Value, len(defs)+len(overrides))
	for _, def := range defs {
		v, ok := overrides[def.Name]
		if !ok {
			var diags hcl.Diagnostics
			v, diags = def.Expr.Value(ectx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate var %q: %s", def.Name, diags.Error())
			}
		}
		env[def.Name] = v
		out[def.Name] = v
	}
	for name, v := range overrides {
		if _, ok := out[name]; !ok {
			env[name] = v
			out[name] = v
		}
	}
	return out, nil
}
