// Package fsutil provides file system helpers for locating scene files.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SceneExtension is the file suffix scene documents are stored under.
const SceneExtension = ".hcl"

// FindSceneFiles recursively searches the given root path for scene files
// and returns their full paths sorted, so multi-file scenes always merge in
// the same order.
func FindSceneFiles(rootPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), SceneExtension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
