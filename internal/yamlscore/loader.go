// Package yamlscore loads score files written in YAML into the
// format-agnostic config.Model.
package yamlscore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions picked up when a directory is loaded.
var Extensions = []string{".yaml", ".yml"}

type scoreFile struct {
	Conductor *conductorBlock `yaml:"conductor"`
	Sections  []sectionBlock  `yaml:"sections"`
	Score     map[string]any  `yaml:"score"`
}

type conductorBlock struct {
	Concurrency *int    `yaml:"concurrency"`
	FailFast    *bool   `yaml:"fail_fast"`
	Timeout     *string `yaml:"timeout"`
}

type sectionBlock struct {
	Kind    string         `yaml:"kind"`
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under paths and merges them, in path order,
// into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Debug("No YAML score files found.", "paths", paths)
		return config.NewModel(), nil
	}

	model := config.NewModel()
	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read score file %s: %w", path, err)
		}
		part, err := l.LoadBytes(src, path)
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

// LoadBytes parses a single in-memory YAML document. Unknown top-level keys
// are rejected. filename is only used in error messages.
func (l *Loader) LoadBytes(src []byte, filename string) (*config.Model, error) {
	var sf scoreFile
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}
	return translate(filename, &sf)
}

func translate(source string, sf *scoreFile) (*config.Model, error) {
	model := config.NewModel()

	if sf.Conductor != nil {
		settings := &config.ConductorSettings{Concurrency: 1, Source: source}
		if c := sf.Conductor.Concurrency; c != nil {
			if *c < 1 {
				return nil, fmt.Errorf("%s: conductor concurrency must be at least 1, got %d", source, *c)
			}
			settings.Concurrency = *c
		}
		if sf.Conductor.FailFast != nil {
			settings.FailFast = *sf.Conductor.FailFast
		}
		if sf.Conductor.Timeout != nil {
			d, err := time.ParseDuration(*sf.Conductor.Timeout)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid conductor timeout: %w", source, err)
			}
			settings.Timeout = d
		}
		model.Conductor = settings
	}

	for i, s := range sf.Sections {
		if s.Kind == "" || s.Name == "" {
			return nil, fmt.Errorf("%s: section #%d needs both kind and name", source, i+1)
		}
		opts := make(map[string]any, len(s.Options))
		for k, v := range s.Options {
			opts[k] = normalize(v)
		}
		model.Sections = append(model.Sections, &config.SectionSpec{
			Kind:    s.Kind,
			Name:    s.Name,
			Options: opts,
			Source:  source,
		})
	}

	for k, v := range sf.Score {
		model.Score[k] = normalize(v)
	}
	return model, nil
}

// normalize maps the generic yaml.v3 decoding onto the value shapes the HCL
// loader produces: numbers become float64 and nested maps map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	default:
		return v
	}
}
