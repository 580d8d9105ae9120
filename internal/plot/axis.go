package plot

// Axis is the view of a scene axis a plot needs: its resolved plotted range
// for sampling and the mapping from data values into logical scene
// coordinates.
type Axis interface {
	// Name identifies the axis within its scene.
	Name() string
	// Log reports whether the axis is logarithmic.
	Log() bool
	// PlottedRange returns the resolved (min, max) range.
	PlottedRange() (float64, float64)
	// DataToLogical maps data values to logical [0, 1] coordinates.
	// Non-finite inputs map to non-finite outputs.
	DataToLogical(vals []float64) []float64
}

// AxisProvider resolves axis names to axes. A missing name means the plot
// has nothing to draw against.
type AxisProvider interface {
	AxisForName(name string) (Axis, bool)
}

// Link ties an axis name to the dependency scope of a range exchange. The
// direction is given by the method returning it: Affects links carry ranges
// from the plot to the axis, Requires links the other way.
type Link struct {
	Axis  string
	Scope Scope
}
