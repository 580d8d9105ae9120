// Package geom holds the drawable primitives a plot is reduced to: polylines
// and height-field meshes, plus the fragment extraction that turns them into
// finite line segments and triangles.
//
// Primitives carry coordinates in logical scene space and never reject
// non-finite values on input. Undefined points are dropped at fragment
// extraction instead: a NaN point breaks a polyline into separate runs, and a
// mesh triangle touching a NaN corner is skipped while its neighbours
// survive.
package geom
