// Package scene loads HCL scene documents and ties their pieces together: a
// vars block of document variables, axis blocks and function3d plot blocks.
// A loaded Document owns the expression service, resolves axis ranges in
// dependency order and builds the geometry of every plot.
package scene
