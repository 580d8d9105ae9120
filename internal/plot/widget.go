package plot

import (
	"context"

	"github.com/vk/surfgrid/internal/expr"
)

// Function is a single function plot bound to an expression service and an
// axis provider. It is not safe for concurrent use; a scene samples its
// plots one at a time.
type Function struct {
	settings Settings
	eval     *expr.Service
	axes     AxisProvider
}

// NewFunction validates the settings and binds the plot to its
// collaborators.
func NewFunction(settings Settings, eval *expr.Service, axes AxisProvider) (*Function, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Function{settings: settings, eval: eval, axes: axes}, nil
}

func (f *Function) Name() string { return f.settings.Name }

func (f *Function) Settings() Settings { return f.settings }

// Affects returns the axes this plot feeds range data into, given its mode.
func (f *Function) Affects() []Link {
	pairs := modeAffects[f.settings.Mode]
	links := make([]Link, len(pairs))
	for i, p := range pairs {
		links[i] = Link{Axis: f.settings.axisName(p.role), Scope: p.scope}
	}
	return links
}

// Requires returns the axes whose plotted ranges must be resolved before
// this plot can be sampled.
func (f *Function) Requires() []Link {
	pairs := modeRequires[f.settings.Mode]
	links := make([]Link, len(pairs))
	for i, p := range pairs {
		links[i] = Link{Axis: f.settings.axisName(p.role), Scope: p.scope}
	}
	return links
}

// fetchAxis resolves the axis for one coordinate role.
func (f *Function) fetchAxis(v Var) (Axis, bool) {
	return f.axes.AxisForName(f.settings.axisName(v))
}

// fetchAxes resolves all three axes in (x, y, z) order.
func (f *Function) fetchAxes() ([3]Axis, bool) {
	var axes [3]Axis
	for i, v := range []Var{VarX, VarY, VarZ} {
		ax, ok := f.fetchAxis(v)
		if !ok {
			return axes, false
		}
		axes[i] = ax
	}
	return axes, true
}

// UpdateRange folds the plot's extent along the given axis into r. scope
// selects the coordinate in the parametric mode; the other modes decide by
// comparing the axis against the roles they affect. Axes the plot does not
// touch, and plots with nothing to draw, leave r untouched.
func (f *Function) UpdateRange(ctx context.Context, ax Axis, scope Scope, r *Range) {
	mode := f.settings.Mode
	switch {
	case mode == ModeParametric:
		var pick func(*LineData) []float64
		switch scope {
		case ScopeSX:
			pick = func(ld *LineData) []float64 { return ld.X }
		case ScopeSY:
			pick = func(ld *LineData) []float64 { return ld.Y }
		case ScopeSZ:
			pick = func(ld *LineData) []float64 { return ld.Z }
		default:
			return
		}
		ld, ok := f.LineVals(ctx)
		if !ok {
			return
		}
		r.FoldFinite(pick(ld))

	case mode.IsLine():
		roles := modeVars[mode]
		var v Var
		switch ax.Name() {
		case f.settings.axisName(roles[0]):
			v = roles[0]
		case f.settings.axisName(roles[1]):
			v = roles[1]
		default:
			return
		}
		ld, ok := f.LineVals(ctx)
		if !ok {
			return
		}
		r.FoldFinite(ld.coord(v))

	default:
		// Surface modes contribute only the height coordinate.
		if ax.Name() != f.settings.axisName(modeGrid[mode].dep) {
			return
		}
		gd, ok := f.GridVals(ctx)
		if !ok {
			return
		}
		r.FoldFinite(gd.Heights.Raveled())
	}
}
