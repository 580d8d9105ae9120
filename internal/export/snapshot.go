package export

import (
	"context"

	"github.com/vk/surfgrid/internal/geom"
	"github.com/vk/surfgrid/internal/scene"
)

// Scene is the serializable form of a built document. Fragment extraction
// drops non-finite points before this point, so a snapshot never carries
// values JSON cannot represent.
type Scene struct {
	Axes  []Axis `json:"axes"`
	Plots []Plot `json:"plots"`
}

// Axis carries one resolved axis range.
type Axis struct {
	Name  string  `json:"name"`
	Label string  `json:"label,omitempty"`
	Log   bool    `json:"log,omitempty"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Line is a batch of segments drawn with one style.
type Line struct {
	Style    geom.LineStyle `json:"style"`
	Segments []geom.Segment `json:"segments"`
}

// Surface is a batch of triangles filled with one style.
type Surface struct {
	Style     geom.SurfaceStyle `json:"style"`
	Triangles []geom.Triangle   `json:"triangles"`
}

// Plot holds the drawable fragments of one plot.
type Plot struct {
	Name     string    `json:"name"`
	Clip     *geom.Box `json:"clip,omitempty"`
	Lines    []Line    `json:"lines,omitempty"`
	Surfaces []Surface `json:"surfaces,omitempty"`
}

// Snapshot resolves the document's axis ranges, builds every plot and
// extracts the drawable fragments.
func Snapshot(ctx context.Context, doc *scene.Document) *Scene {
	built := doc.BuildAll(ctx)

	s := &Scene{}
	for _, ax := range doc.Axes() {
		min, max := ax.PlottedRange()
		s.Axes = append(s.Axes, Axis{
			Name:  ax.Name(),
			Label: ax.Label(),
			Log:   ax.Log(),
			Min:   min,
			Max:   max,
		})
	}
	for _, pg := range built {
		s.Plots = append(s.Plots, snapshotPlot(pg))
	}
	return s
}

// snapshotPlot flattens one plot's container. A mesh contributes its
// wireframe to the lines and its fill to the surfaces.
func snapshotPlot(pg scene.PlotGeometry) Plot {
	p := Plot{Name: pg.Name, Clip: pg.Container.Clip}
	for _, line := range pg.Container.Lines {
		if segs := line.Segments(); len(segs) > 0 {
			p.Lines = append(p.Lines, Line{Style: line.Style, Segments: segs})
		}
	}
	for _, mesh := range pg.Container.Meshes {
		if mesh.Line != nil {
			if segs := mesh.LineSegments(); len(segs) > 0 {
				p.Lines = append(p.Lines, Line{Style: *mesh.Line, Segments: segs})
			}
		}
		if mesh.Surface != nil {
			if tris := mesh.Triangles(); len(tris) > 0 {
				p.Surfaces = append(p.Surfaces, Surface{Style: *mesh.Surface, Triangles: tris})
			}
		}
	}
	return p
}
