package geom

// Container groups the drawable objects produced for one plot together with
// the volume they are clipped to. Clipping itself is left to the renderer;
// the box travels with the geometry.
type Container struct {
	Lines  []*PolyLine
	Meshes []*Mesh
	Clip   *Box
}

func (c *Container) AddLine(p *PolyLine) { c.Lines = append(c.Lines, p) }

func (c *Container) AddMesh(m *Mesh) { c.Meshes = append(c.Meshes, m) }

// Empty reports whether the container holds no objects at all.
func (c *Container) Empty() bool {
	return len(c.Lines) == 0 && len(c.Meshes) == 0
}
