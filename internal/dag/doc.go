// Package dag holds the dependency graph behind the scene's range
// resolution pass. Nodes are axis names; an edge from one axis to another
// means the second can only resolve its plotted range once the first has.
// The graph orders axes so inputs resolve before the plots that sample them,
// and reports the axes trapped in dependency cycles so the pass can fall
// back to their configured bounds.
package dag
