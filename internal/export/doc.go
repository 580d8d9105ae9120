// Package export reduces a built scene to a serializable snapshot: resolved
// axis ranges plus the line and triangle fragments of every plot, encoded as
// JSON and optionally gzip-compressed on disk. The snapshot is the contract
// shared by the render subcommand and the preview service.
package export
