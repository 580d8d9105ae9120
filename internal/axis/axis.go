// Package axis implements scene axes: named, optionally logarithmic ranges
// that resolve their plotted extent from configuration and from the plots
// that feed them, and map data values into logical [0, 1] coordinates.
package axis

import (
	"fmt"
	"math"

	"github.com/vk/surfgrid/internal/plot"
)

// Config is the user-facing description of an axis. Nil Min or Max mean the
// bound is resolved automatically from plotted data.
type Config struct {
	Name  string
	Label string
	Log   bool
	Min   *float64
	Max   *float64
}

// Axis is one scene axis. Its plotted range starts unresolved; the scene's
// range pass calls Resolve once the contributions of all plots are known.
type Axis struct {
	cfg      Config
	min, max float64
	resolved bool
}

// New validates the configuration and returns an unresolved axis.
func New(cfg Config) (*Axis, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("axis has no name")
	}
	if cfg.Min != nil && (math.IsNaN(*cfg.Min) || math.IsInf(*cfg.Min, 0)) {
		return nil, fmt.Errorf("axis %q: min must be finite", cfg.Name)
	}
	if cfg.Max != nil && (math.IsNaN(*cfg.Max) || math.IsInf(*cfg.Max, 0)) {
		return nil, fmt.Errorf("axis %q: max must be finite", cfg.Name)
	}
	return &Axis{cfg: cfg}, nil
}

func (a *Axis) Name() string  { return a.cfg.Name }
func (a *Axis) Label() string { return a.cfg.Label }
func (a *Axis) Log() bool     { return a.cfg.Log }

// Resolved reports whether the plotted range has been fixed.
func (a *Axis) Resolved() bool { return a.resolved }

// Resolve fixes the plotted range from the accumulated data extent. r may
// be nil or invalid, meaning no plot contributed anything finite.
func (a *Axis) Resolve(r *plot.Range) {
	a.min, a.max = a.resolveRange(r)
	a.resolved = true
}

// PlottedRange returns the resolved range. An unresolved axis falls back to
// the range it would resolve to without any data.
func (a *Axis) PlottedRange() (float64, float64) {
	if !a.resolved {
		return a.resolveRange(nil)
	}
	return a.min, a.max
}

// resolveRange works out the plotted range: configured bounds win, then the
// accumulated extent, then the defaults. The result is then made sane so
// sampling always has a usable range: log axes get positive bounds,
// reversed bounds are swapped and degenerate ranges are widened.
func (a *Axis) resolveRange(r *plot.Range) (float64, float64) {
	min, max := 0.0, 1.0
	if a.cfg.Log {
		min, max = 0.1, 10
	}
	if r != nil && r.Valid() {
		min, max = r.Min, r.Max
	}
	if a.cfg.Min != nil {
		min = *a.cfg.Min
	}
	if a.cfg.Max != nil {
		max = *a.cfg.Max
	}

	if a.cfg.Log {
		if max <= 0 {
			min, max = 0.1, 10
		} else if min <= 0 {
			min = max / 1e3
		}
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		if a.cfg.Log {
			min, max = min/10, max*10
		} else {
			min, max = min-1, max+1
		}
	}
	return min, max
}

// DataToLogical maps data values onto [0, 1] between the plotted bounds.
// Values outside the range extrapolate beyond [0, 1]; non-finite values and,
// on log axes, non-positive values come out non-finite and are dropped
// later at fragment extraction.
func (a *Axis) DataToLogical(vals []float64) []float64 {
	min, max := a.PlottedRange()
	out := make([]float64, len(vals))
	if a.cfg.Log {
		logmin := math.Log10(min)
		span := math.Log10(max) - logmin
		for i, v := range vals {
			out[i] = (math.Log10(v) - logmin) / span
		}
		return out
	}
	span := max - min
	for i, v := range vals {
		out[i] = (v - min) / span
	}
	return out
}
