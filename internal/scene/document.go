package scene

import (
	"context"
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/surfgrid/internal/axis"
	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/expr"
	"github.com/vk/surfgrid/internal/plot"
)

// Document is a fully constructed scene: evaluated vars, the axes, and the
// function plots bound to them.
type Document struct {
	vars  map[string]cty.Value
	eval  *expr.Service
	axes  map[string]*axis.Axis
	plots []*plot.Function
}

// NewDocument builds a Document from one or more decoded configs. Configs are
// applied in order; axis and plot names must be unique across all of them.
func NewDocument(ctx context.Context, configs ...*Config) (*Document, error) {
	return NewDocumentWith(ctx, Options{}, configs...)
}

// NewDocumentWith is NewDocument with construction options applied.
func NewDocumentWith(ctx context.Context, opts Options, configs ...*Config) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	var defs []expr.Definition
	for _, cfg := range configs {
		d, err := collectDefinitions(cfg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d...)
	}
	vars, err := expr.EvalDefinitionsWith(defs, opts.Vars)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		vars: vars,
		eval: expr.NewService(vars),
		axes: make(map[string]*axis.Axis),
	}

	for _, cfg := range configs {
		for _, ab := range cfg.Axes {
			if _, ok := doc.axes[ab.Name]; ok {
				return nil, fmt.Errorf("duplicate axis %q", ab.Name)
			}
			ax, err := axis.New(axis.Config{
				Name:  ab.Name,
				Label: ab.Label,
				Log:   ab.Log,
				Min:   ab.Min,
				Max:   ab.Max,
			})
			if err != nil {
				return nil, err
			}
			doc.axes[ab.Name] = ax
		}
	}

	seen := make(map[string]bool)
	for _, cfg := range configs {
		for _, pb := range cfg.Plots {
			if seen[pb.Name] {
				return nil, fmt.Errorf("duplicate plot %q", pb.Name)
			}
			seen[pb.Name] = true

			settings, err := plotSettings(pb, opts)
			if err != nil {
				return nil, err
			}
			fn, err := plot.NewFunction(settings, doc.eval, doc)
			if err != nil {
				return nil, err
			}
			doc.plots = append(doc.plots, fn)
		}
	}

	doc.ensureAxes()
	logger.Info("scene loaded", "axes", len(doc.axes), "plots", len(doc.plots), "vars", len(doc.vars))
	return doc, nil
}

// ensureAxes creates default axes for any axis name a plot references but no
// axis block declares.
func (d *Document) ensureAxes() {
	for _, fn := range d.plots {
		s := fn.Settings()
		for _, name := range []string{s.XAxis, s.YAxis, s.ZAxis} {
			if _, ok := d.axes[name]; ok {
				continue
			}
			ax, err := axis.New(axis.Config{Name: name})
			if err != nil {
				continue
			}
			d.axes[name] = ax
		}
	}
}

// plotSettings maps a decoded plot block onto plot settings, filling defaults
// for everything the block leaves out.
func plotSettings(pb *PlotBlock, opts Options) (plot.Settings, error) {
	settings := plot.DefaultSettings(pb.Name)

	mode, err := plot.ParseMode(pb.Mode)
	if err != nil {
		return settings, fmt.Errorf("plot %q: %w", pb.Name, err)
	}
	settings.Mode = mode
	settings.FnX = pb.FnX
	settings.FnY = pb.FnY
	settings.FnZ = pb.FnZ

	if pb.LineSteps != nil {
		settings.LineSteps = *pb.LineSteps
	}
	if pb.SurfaceSteps != nil {
		settings.SurfaceSteps = *pb.SurfaceSteps
	}
	if pb.XAxis != "" {
		settings.XAxis = pb.XAxis
	}
	if pb.YAxis != "" {
		settings.YAxis = pb.YAxis
	}
	if pb.ZAxis != "" {
		settings.ZAxis = pb.ZAxis
	}
	if pb.Line != nil {
		if pb.Line.Color != "" {
			settings.Line.Color = pb.Line.Color
		}
		if pb.Line.Width != nil {
			settings.Line.Width = *pb.Line.Width
		}
		if pb.Line.Transparency != nil {
			settings.Line.Transparency = *pb.Line.Transparency
		}
		settings.Line.Hidden = pb.Line.Hidden
	}
	if pb.Surface != nil {
		if pb.Surface.Color != "" {
			settings.Surface.Color = pb.Surface.Color
		}
		if pb.Surface.Transparency != nil {
			settings.Surface.Transparency = *pb.Surface.Transparency
		}
		if pb.Surface.Reflectivity != nil {
			settings.Surface.Reflectivity = *pb.Surface.Reflectivity
		}
		settings.Surface.Hidden = pb.Surface.Hidden
	}

	if limit := opts.StepsCap; limit > 0 {
		if settings.LineSteps > limit {
			settings.LineSteps = limit
		}
		if settings.SurfaceSteps > limit {
			settings.SurfaceSteps = limit
		}
	}
	return settings, nil
}

// AxisForName returns the named axis. It implements plot.AxisProvider.
func (d *Document) AxisForName(name string) (plot.Axis, bool) {
	ax, ok := d.axes[name]
	if !ok {
		return nil, false
	}
	return ax, true
}

// Axes returns every axis in the document sorted by name.
func (d *Document) Axes() []*axis.Axis {
	names := make([]string, 0, len(d.axes))
	for name := range d.axes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*axis.Axis, 0, len(names))
	for _, name := range names {
		out = append(out, d.axes[name])
	}
	return out
}

// Plots returns the document's plots in declaration order.
func (d *Document) Plots() []*plot.Function {
	return d.plots
}

// Vars returns the evaluated document variables.
func (d *Document) Vars() map[string]cty.Value {
	return d.vars
}

// Eval returns the expression service shared by the document's plots.
func (d *Document) Eval() *expr.Service {
	return d.eval
}
