package scene

import (
	"context"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/geom"
)

// PlotGeometry pairs a plot's name with the geometry it produced.
type PlotGeometry struct {
	Name      string
	Container *geom.Container
}

// BuildAll resolves the axis ranges and builds geometry for every plot.
// Plots with nothing to draw are skipped; the result holds one entry per
// plot that produced geometry, in declaration order.
func (d *Document) BuildAll(ctx context.Context) []PlotGeometry {
	logger := ctxlog.FromContext(ctx)
	d.ResolveRanges(ctx)

	out := make([]PlotGeometry, 0, len(d.plots))
	for _, fn := range d.plots {
		container, ok := fn.Build(ctx)
		if !ok {
			logger.Debug("plot produced no geometry", "plot", fn.Name())
			continue
		}
		out = append(out, PlotGeometry{Name: fn.Name(), Container: container})
	}
	logger.Info("scene built", "plots", len(d.plots), "drawn", len(out))
	return out
}
