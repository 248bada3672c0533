package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/fsutil"
	"github.com/specialistvlad/orchestraigo/internal/schema"
)

// Extension is the file extension of HCL score files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges them, in path order,
// into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Debug("No .hcl score files found.", "paths", paths)
		return config.NewModel(), nil
	}
	logger.Debug("Found HCL files to load.", "files", files)

	parser := hclparse.NewParser()
	model := config.NewModel()
	for _, path := range files {
		part, err := l.loadFile(parser, path)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, err
		}
		logger.Debug("Loaded score file.", "file", path, "sections", len(part.Sections))
	}

	logger.Info("Score loaded.", "files", len(files), "sections", len(model.Sections), "score_keys", len(model.Score))
	return model, nil
}

// LoadBytes parses a single in-memory HCL document. filename is only used
// in diagnostics.
func (l *Loader) LoadBytes(src []byte, filename string) (*config.Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func (l *Loader) loadFile(parser *hclparse.Parser, path string) (*config.Model, error) {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(file, path)
}

func decode(file *hcl.File, source string) (*config.Model, error) {
	var sf schema.ScoreFile
	if diags := gohcl.DecodeBody(file.Body, nil, &sf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode score file %s: %w", source, diags)
	}
	return translate(source, &sf)
}
