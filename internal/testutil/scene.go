package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/surfgrid/internal/export"
)

// LoadSceneSource loads a single-file scene from source text.
func LoadSceneSource(t *testing.T, source string) *SceneResult {
	t.Helper()
	return LoadScene(t, map[string]string{"main.hcl": source})
}

// BuildSnapshot loads a single-file scene and runs the full range and build
// passes, returning the export form. It fails the test on any load error.
func BuildSnapshot(t *testing.T, source string) *export.Scene {
	t.Helper()

	result := LoadSceneSource(t, source)
	require.NoError(t, result.Err, "scene should load cleanly")

	return export.Snapshot(result.Context(), result.Doc)
}
