package plot

import (
	"context"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/geom"
)

// dirnFor maps the dependent coordinate of a surface plot to its mesh
// orientation.
func dirnFor(v Var) geom.Dirn {
	switch v {
	case VarX:
		return geom.DirnX
	case VarY:
		return geom.DirnY
	default:
		return geom.DirnZ
	}
}

// Build samples the plot and reduces it to drawable geometry in logical
// scene coordinates, clipped to the unit cube. Reports false when there is
// nothing to draw: missing axes, nothing to sample, or every style hidden.
func (f *Function) Build(ctx context.Context) (*geom.Container, bool) {
	axes, ok := f.fetchAxes()
	if !ok {
		ctxlog.FromContext(ctx).With("plot", f.settings.Name).Debug("skipping build, axis missing")
		return nil, false
	}

	container := &geom.Container{}
	clip := geom.UnitBox()
	container.Clip = &clip

	if f.settings.Mode.IsLine() {
		if f.settings.Line.Hidden {
			return nil, false
		}
		ld, ok := f.LineVals(ctx)
		if !ok {
			return nil, false
		}
		line := geom.NewPolyLine(f.settings.Line,
			axes[0].DataToLogical(ld.X),
			axes[1].DataToLogical(ld.Y),
			axes[2].DataToLogical(ld.Z))
		container.AddLine(line)
		return container, true
	}

	var lineStyle *geom.LineStyle
	var surfStyle *geom.SurfaceStyle
	if !f.settings.Line.Hidden {
		ls := f.settings.Line
		lineStyle = &ls
	}
	if !f.settings.Surface.Hidden {
		ss := f.settings.Surface
		surfStyle = &ss
	}
	if lineStyle == nil && surfStyle == nil {
		return nil, false
	}

	gd, ok := f.GridVals(ctx)
	if !ok {
		return nil, false
	}

	mesh := geom.NewMesh(
		axes[gd.AxIdx[1]].DataToLogical(gd.Steps1),
		axes[gd.AxIdx[2]].DataToLogical(gd.Steps2),
		axes[gd.AxIdx[0]].DataToLogical(gd.Heights.Raveled()),
		dirnFor(gd.Dep), lineStyle, surfStyle)
	container.AddMesh(mesh)
	return container, true
}
