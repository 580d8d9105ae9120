package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/vk/surfgrid/internal/ctxlog"
)

// Write encodes the snapshot as indented JSON.
func Write(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode scene snapshot: %w", err)
	}
	return nil
}

// WriteFile writes the snapshot to path. Paths ending in .gz are
// gzip-compressed.
func WriteFile(ctx context.Context, path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := Write(w, s); err != nil {
		f.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return fmt.Errorf("failed to finish compressed output: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	ctxlog.FromContext(ctx).Info("scene exported", "path", path, "axes", len(s.Axes), "plots", len(s.Plots))
	return nil
}
