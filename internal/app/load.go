package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/fsutil"
	"github.com/specialistvlad/orchestraigo/internal/hcl"
	"github.com/specialistvlad/orchestraigo/internal/yamlscore"
)

// scoreLoader collects score files once and hands each to the loader for
// its format, so files merge in path order, then lexical order inside each
// directory, whatever their format.
type scoreLoader struct {
	hcl  config.Loader
	yaml config.Loader
}

// NewScoreLoader returns the loader used when NewApp is given none. It reads
// HCL and YAML score files side by side.
func NewScoreLoader() config.Loader {
	return &scoreLoader{hcl: hcl.NewLoader(), yaml: yamlscore.NewLoader()}
}

func (l *scoreLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(paths, append([]string{hcl.Extension}, yamlscore.Extensions...)...)
	if err != nil {
		return nil, err
	}

	model := config.NewModel()
	for _, f := range files {
		ld, err := l.loaderFor(f)
		if err != nil {
			return nil, err
		}
		part, err := ld.Load(ctx, f)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, err
		}
	}
	if len(model.Sections) == 0 {
		logger.Warn("No sections declared in score.", "paths", paths)
	}
	return model, nil
}

func (l *scoreLoader) loaderFor(path string) (config.Loader, error) {
	ext := filepath.Ext(path)
	switch {
	case ext == hcl.Extension:
		return l.hcl, nil
	case slices.Contains(yamlscore.Extensions, ext):
		return l.yaml, nil
	default:
		return nil, fmt.Errorf("unsupported score file %s: expected %s, .yaml or .yml", path, hcl.Extension)
	}
}
