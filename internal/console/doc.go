// Package console implements the interactive prompt: a line-edited
// calculator over the expression engine with tab completion and history,
// plus commands for inspecting a loaded scene, resolving its axis ranges and
// building its geometry.
package console
