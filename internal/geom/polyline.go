package geom

// PolyLine is a connected sequence of points drawn with a single style.
type PolyLine struct {
	Points []Vec3
	Style  LineStyle
}

// NewPolyLine builds a polyline from parallel coordinate arrays, truncated to
// the shortest of the three.
func NewPolyLine(style LineStyle, x, y, z []float64) *PolyLine {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if len(z) < n {
		n = len(z)
	}
	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		points[i] = Vec3{X: x[i], Y: y[i], Z: z[i]}
	}
	return &PolyLine{Points: points, Style: style}
}

// Segments returns the drawable fragments: one segment per consecutive pair
// of finite points. A non-finite point severs the chain on both sides.
func (p *PolyLine) Segments() []Segment {
	var segs []Segment
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		if a.Finite() && b.Finite() {
			segs = append(segs, Segment{A: a, B: b})
		}
	}
	return segs
}
