package scene

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/expr"
	"github.com/vk/surfgrid/internal/fsutil"
)

// DecodeFile parses and decodes a single HCL scene file.
func DecodeFile(ctx context.Context, filePath string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("decoding scene file", "path", filePath)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene file %s: %s", filePath, diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scene file %s: %s", filePath, diags.Error())
	}

	logger.Debug("decoded scene file", "path", filePath, "axes", len(config.Axes), "plots", len(config.Plots))
	return &config, nil
}

// DecodeSource parses and decodes scene source held in memory. filename is
// used for diagnostics only.
func DecodeSource(ctx context.Context, filename string, src []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene source %s: %s", filename, diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scene source %s: %s", filename, diags.Error())
	}
	return &config, nil
}

// Options tune document construction beyond what the scene files say.
type Options struct {
	// StepsCap clamps line_steps and surface_steps of every plot. Zero
	// leaves the configured values alone.
	StepsCap int

	// Vars override document variables by name before evaluation, so
	// variables derived from an overridden one follow. Names no vars
	// block declares are added.
	Vars map[string]cty.Value
}

// LoadPath loads a scene from a file, or from every scene file under a
// directory merged in sorted path order.
func LoadPath(ctx context.Context, path string) (*Document, error) {
	return LoadPathWith(ctx, path, Options{})
}

// LoadPathWith is LoadPath with construction options applied.
func LoadPathWith(ctx context.Context, path string, opts Options) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindSceneFiles(path)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scene directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no %s scene files found under %s", fsutil.SceneExtension, path)
		}
	}

	configs := make([]*Config, 0, len(files))
	for _, f := range files {
		cfg, err := DecodeFile(ctx, f)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return NewDocumentWith(ctx, opts, configs...)
}

// collectDefinitions pulls the vars attributes out of one config in source
// order.
func collectDefinitions(cfg *Config) ([]expr.Definition, error) {
	if cfg.Vars == nil {
		return nil, nil
	}
	attrs, diags := cfg.Vars.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read vars block: %s", diags.Error())
	}

	list := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Range.Start.Byte < list[j].Range.Start.Byte
	})

	defs := make([]expr.Definition, 0, len(list))
	for _, attr := range list {
		defs = append(defs, expr.Definition{Name: attr.Name, Expr: attr.Expr})
	}
	return defs, nil
}
