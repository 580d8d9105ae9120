package plot

import (
	"fmt"

	"github.com/vk/surfgrid/internal/geom"
)

// Settings holds everything that defines a function plot. Unset expressions
// are legal and simply mean nothing to plot in the modes that need them.
type Settings struct {
	Name string
	Mode Mode

	// Expressions per output coordinate. A mode reads only the ones it
	// needs: surface modes read the dependent coordinate's expression, the
	// parametric mode all three, dependent line modes the two dependents.
	FnX string
	FnY string
	FnZ string

	LineSteps    int // samples along a line, minimum 3
	SurfaceSteps int // samples per grid direction, minimum 3

	// Names of the axes the plot draws against.
	XAxis string
	YAxis string
	ZAxis string

	Line    geom.LineStyle
	Surface geom.SurfaceStyle
}

// DefaultSettings returns a named plot with the stock defaults: parametric
// mode, 50 line steps, 20 surface steps and the conventional axis names.
func DefaultSettings(name string) Settings {
	return Settings{
		Name:         name,
		Mode:         ModeParametric,
		LineSteps:    50,
		SurfaceSteps: 20,
		XAxis:        "x",
		YAxis:        "y",
		ZAxis:        "z",
		Line:         geom.DefaultLineStyle(),
		Surface:      geom.DefaultSurfaceStyle(),
	}
}

// Validate checks the structural settings. Expression content is not
// checked here; broken expressions surface later as absence.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("plot has no name")
	}
	if s.LineSteps < 3 {
		return fmt.Errorf("plot %q: line_steps must be at least 3, got %d", s.Name, s.LineSteps)
	}
	if s.SurfaceSteps < 3 {
		return fmt.Errorf("plot %q: surface_steps must be at least 3, got %d", s.Name, s.SurfaceSteps)
	}
	if s.XAxis == "" || s.YAxis == "" || s.ZAxis == "" {
		return fmt.Errorf("plot %q: all three axis names must be set", s.Name)
	}
	return nil
}

// fn returns the expression for the given coordinate.
func (s *Settings) fn(v Var) string {
	switch v {
	case VarX:
		return s.FnX
	case VarY:
		return s.FnY
	default:
		return s.FnZ
	}
}

// axisName returns the configured axis name for the given coordinate.
func (s *Settings) axisName(v Var) string {
	switch v {
	case VarX:
		return s.XAxis
	case VarY:
		return s.YAxis
	default:
		return s.ZAxis
	}
}
