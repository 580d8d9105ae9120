// Package testutil provides the scene harness shared by the system tests:
// it materializes scene sources on disk, loads them with debug logging
// captured, and hands back the document together with the log output.
package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/scene"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// TestLogger returns a debug-level text logger writing to w.
func TestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// SceneResult holds the outcomes of a scene harness run. Logs keeps
// accumulating when the test drives further passes through Context.
type SceneResult struct {
	Err  error
	Doc  *scene.Document
	Logs *SafeBuffer
}

// LogOutput returns everything logged through the harness so far.
func (r *SceneResult) LogOutput() string { return r.Logs.String() }

// Context returns a context carrying the harness logger, for driving the
// range and build passes over the loaded document.
func (r *SceneResult) Context() context.Context {
	return ctxlog.WithLogger(context.Background(), TestLogger(r.Logs))
}

// LoadScene provides a standardized harness for loading a scene from file
// contents with default construction options.
func LoadScene(t *testing.T, files map[string]string) *SceneResult {
	t.Helper()
	return LoadSceneWithOptions(t, files, scene.Options{})
}

// LoadSceneWithOptions provides a standardized harness for loading a scene
// with construction options provided by the caller.
func LoadSceneWithOptions(t *testing.T, files map[string]string, opts scene.Options) *SceneResult {
	t.Helper()

	// 1. Write all scene files to a temporary directory. The test provides
	//    relative paths, which naturally creates any subdirectory structure.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Capture everything the passes log at debug level.
	logBuffer := &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("SURFGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	result := &SceneResult{Logs: logBuffer}
	result.Doc, result.Err = scene.LoadPathWith(result.Context(), tmpDir, opts)
	return result
}
