// Package preview serves a live view of a scene: a socket.io endpoint that
// pushes the built snapshot to connected viewers, a plain JSON endpoint for
// one-shot fetches, and an optional file watcher that rebuilds and re-pushes
// whenever a scene file changes on disk.
package preview
