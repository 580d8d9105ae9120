package geom

// Dirn names the axis a mesh's height values run along.
type Dirn uint8

const (
	DirnX Dirn = iota
	DirnY
	DirnZ
)

func (d Dirn) String() string {
	switch d {
	case DirnX:
		return "x"
	case DirnY:
		return "y"
	default:
		return "z"
	}
}

// vecIdxs returns the coordinate indices used for the height, pos1 and pos2
// directions of a mesh with this orientation.
func (d Dirn) vecIdxs() (h, p1, p2 int) {
	switch d {
	case DirnY:
		return 1, 2, 0
	case DirnZ:
		return 2, 0, 1
	default:
		return 0, 1, 2
	}
}

// Mesh is a height field over a rectangular grid. Heights holds one value
// per (pos1, pos2) pair, raveled with pos1 as the major index, and Dirn
// names the coordinate the heights run along; the two grid positions fill
// the remaining coordinates.
//
// A nil Line or Surface style suppresses the corresponding fragments.
type Mesh struct {
	Pos1    []float64
	Pos2    []float64
	Heights []float64
	Dirn    Dirn
	Line    *LineStyle
	Surface *SurfaceStyle
}

// NewMesh builds a mesh, panicking if Heights does not cover the grid.
func NewMesh(pos1, pos2, heights []float64, dirn Dirn, line *LineStyle, surface *SurfaceStyle) *Mesh {
	if len(heights) != len(pos1)*len(pos2) {
		panic("geom: mesh heights do not cover the grid")
	}
	return &Mesh{Pos1: pos1, Pos2: pos2, Heights: heights, Dirn: dirn, Line: line, Surface: surface}
}

// LineSegments returns the wireframe fragments: grid lines in both step
// directions, severed wherever a point is not finite. Returns nil when the
// mesh has no line style.
func (m *Mesh) LineSegments() []Segment {
	if m.Line == nil {
		return nil
	}

	vh, v1, v2 := m.Dirn.vecIdxs()
	n2 := len(m.Pos2)
	var segs []Segment

	for stepindex := 0; stepindex <= 1; stepindex++ {
		vecStep, vecConst := m.Pos1, m.Pos2
		vidxStep, vidxConst := v1, v2
		if stepindex == 1 {
			vecStep, vecConst = m.Pos2, m.Pos1
			vidxStep, vidxConst = v2, v1
		}

		for consti := range vecConst {
			var last Vec3
			for stepi := range vecStep {
				var height float64
				if stepindex == 0 {
					height = m.Heights[stepi*n2+consti]
				} else {
					height = m.Heights[consti*n2+stepi]
				}

				var pt Vec3
				pt = pt.withComponent(vh, height)
				pt = pt.withComponent(vidxStep, vecStep[stepi])
				pt = pt.withComponent(vidxConst, vecConst[consti])

				if stepi > 0 && pt.Finite() && last.Finite() {
					segs = append(segs, Segment{A: last, B: pt})
				}
				last = pt
			}
		}
	}
	return segs
}

// Each grid cell is split into two triangles. Alternating the split
// diagonal per cell gives a symmetric diamond pattern, which looks better
// when striped.
var meshTriIdxs = [2][2][3]int{
	{{0, 1, 2}, {3, 1, 2}},
	{{1, 0, 3}, {2, 0, 3}},
}

// Triangles returns the surface fragments, skipping any triangle with a
// non-finite corner. Returns nil when the mesh has no surface style.
func (m *Mesh) Triangles() []Triangle {
	if m.Surface == nil {
		return nil
	}

	vh, v1, v2 := m.Dirn.vecIdxs()
	n1, n2 := len(m.Pos1), len(m.Pos2)
	var tris []Triangle
	var p [4]Vec3

	for i1 := 0; i1+1 < n1; i1++ {
		for i2 := 0; i2+1 < n2; i2++ {
			for i := 0; i < 4; i++ {
				j1, j2 := i1+i%2, i2+i/2
				var pt Vec3
				pt = pt.withComponent(vh, m.Heights[j1*n2+j2])
				pt = pt.withComponent(v1, m.Pos1[j1])
				pt = pt.withComponent(v2, m.Pos2[j2])
				p[i] = pt
			}

			for tri := 0; tri < 2; tri++ {
				idxs := meshTriIdxs[(i1+i2)%2][tri]
				a, b, c := p[idxs[0]], p[idxs[1]], p[idxs[2]]
				if a.Finite() && b.Finite() && c.Finite() {
					tris = append(tris, Triangle{A: a, B: b, C: c})
				}
			}
		}
	}
	return tris
}
