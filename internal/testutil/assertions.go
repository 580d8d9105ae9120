package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertAxisRange checks that the named axis of a loaded scene resolved to
// the given plotted range. It abstracts the axis lookup so tests read as
// statements about the scene rather than about document internals.
func AssertAxisRange(t *testing.T, result *SceneResult, name string, wantMin, wantMax float64) {
	t.Helper()

	require.NotNil(t, result.Doc, "scene did not load: %v", result.Err)
	ax, ok := result.Doc.AxisForName(name)
	require.True(t, ok, "axis %q not found in the scene", name)

	min, max := ax.PlottedRange()
	require.InDelta(t, wantMin, min, 1e-9, "axis %q min", name)
	require.InDelta(t, wantMax, max, 1e-9, "axis %q max", name)
}
