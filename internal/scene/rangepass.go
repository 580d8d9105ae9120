package scene

import (
	"context"

	"github.com/vk/surfgrid/internal/axis"
	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/dag"
	"github.com/vk/surfgrid/internal/plot"
)

// ResolveRanges fixes the plotted range of every axis from the plots drawing
// on it.
//
// Sampling a plot can itself consume another axis's resolved range: a
// surface z = f(x, y) samples x and y to produce the z values. Axes are
// therefore resolved in dependency order, built from each plot's required
// and affected axes. Axes caught in a dependency cycle cannot be autoranged
// and fall back to their configured or default bounds.
func (d *Document) ResolveRanges(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)

	g := dag.New()
	for name := range d.axes {
		g.AddNode(name)
	}
	for _, fn := range d.plots {
		for _, req := range fn.Requires() {
			for _, aff := range fn.Affects() {
				if req.Axis == aff.Axis {
					continue
				}
				// Both ends exist: ensureAxes created every referenced axis.
				_ = g.AddEdge(req.Axis, aff.Axis)
			}
		}
	}

	ordered, cyclic := g.TopologicalOrder()
	logger.Debug("resolving axis ranges", "order", ordered, "cyclic", cyclic)

	for _, name := range ordered {
		d.resolveAxis(ctx, d.axes[name])
	}
	for _, name := range cyclic {
		logger.Warn("axis range dependency cycle, falling back to configured bounds", "axis", name)
		d.axes[name].Resolve(nil)
	}
}

// resolveAxis accumulates the data extent every plot contributes to ax, then
// resolves the axis from it.
func (d *Document) resolveAxis(ctx context.Context, ax *axis.Axis) {
	r := plot.NewRange()
	for _, fn := range d.plots {
		for _, link := range fn.Affects() {
			if link.Axis != ax.Name() {
				continue
			}
			fn.UpdateRange(ctx, ax, link.Scope, r)
		}
	}
	ax.Resolve(r)
}
