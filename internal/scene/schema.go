package scene

import "github.com/hashicorp/hcl/v2"

// VarsBlock holds free-form document variable definitions. Its attributes
// are evaluated in source order against the builtin constants and
// functions.
type VarsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// AxisBlock is an `axis "name" {}` block. Omitted min or max bounds resolve
// automatically from plotted data.
type AxisBlock struct {
	Name  string   `hcl:"name,label"`
	Label string   `hcl:"label,optional"`
	Log   bool     `hcl:"log,optional"`
	Min   *float64 `hcl:"min,optional"`
	Max   *float64 `hcl:"max,optional"`
}

// LineBlock styles a plot's line fragments. Omitted fields keep their
// defaults.
type LineBlock struct {
	Color        string   `hcl:"color,optional"`
	Width        *float64 `hcl:"width,optional"`
	Transparency *int     `hcl:"transparency,optional"`
	Hidden       bool     `hcl:"hidden,optional"`
}

// SurfaceBlock styles a plot's surface fill.
type SurfaceBlock struct {
	Color        string `hcl:"color,optional"`
	Transparency *int   `hcl:"transparency,optional"`
	Reflectivity *int   `hcl:"reflectivity,optional"`
	Hidden       bool   `hcl:"hidden,optional"`
}

// PlotBlock is a `function3d "name" {}` block describing one function plot.
type PlotBlock struct {
	Name         string        `hcl:"name,label"`
	Mode         string        `hcl:"mode"`
	FnX          string        `hcl:"fnx,optional"`
	FnY          string        `hcl:"fny,optional"`
	FnZ          string        `hcl:"fnz,optional"`
	LineSteps    *int          `hcl:"line_steps,optional"`
	SurfaceSteps *int          `hcl:"surface_steps,optional"`
	XAxis        string        `hcl:"x_axis,optional"`
	YAxis        string        `hcl:"y_axis,optional"`
	ZAxis        string        `hcl:"z_axis,optional"`
	Line         *LineBlock    `hcl:"line,block"`
	Surface      *SurfaceBlock `hcl:"surface,block"`
}

// Config is the top-level structure of one scene file.
type Config struct {
	Vars  *VarsBlock   `hcl:"vars,block"`
	Axes  []*AxisBlock `hcl:"axis,block"`
	Plots []*PlotBlock `hcl:"function3d,block"`
	Body  hcl.Body     `hcl:",remain"`
}
