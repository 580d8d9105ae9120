package geom

// LineStyle describes how line fragments are drawn.
type LineStyle struct {
	Color        string  `json:"color"`
	Width        float64 `json:"width"`
	Transparency int     `json:"transparency"` // percent, 0 is opaque
	Hidden       bool    `json:"hidden,omitempty"`
}

// SurfaceStyle describes how triangle fragments are filled.
type SurfaceStyle struct {
	Color        string `json:"color"`
	Transparency int    `json:"transparency"`
	Reflectivity int    `json:"reflectivity"` // percent of light reflected
	Hidden       bool   `json:"hidden,omitempty"`
}

// DefaultLineStyle matches the style a plot starts with before any scene
// settings are applied.
func DefaultLineStyle() LineStyle {
	return LineStyle{Color: "black", Width: 1}
}

// DefaultSurfaceStyle is the default fill for meshes.
func DefaultSurfaceStyle() SurfaceStyle {
	return SurfaceStyle{Color: "grey", Reflectivity: 50}
}
