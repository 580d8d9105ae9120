package geom

import "math"

// Vec3 is a point in logical scene coordinates.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Finite reports whether all three coordinates are finite numbers.
func (v Vec3) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// withComponent returns a copy with the coordinate at idx replaced.
func (v Vec3) withComponent(idx int, val float64) Vec3 {
	switch idx {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// Segment is a line segment between two points.
type Segment struct {
	A Vec3 `json:"a"`
	B Vec3 `json:"b"`
}

// Triangle is a filled triangle between three points.
type Triangle struct {
	A Vec3 `json:"a"`
	B Vec3 `json:"b"`
	C Vec3 `json:"c"`
}

// Box is an axis-aligned clip volume.
type Box struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// UnitBox is the logical cube all plotted geometry is clipped to.
func UnitBox() Box {
	return Box{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
}
