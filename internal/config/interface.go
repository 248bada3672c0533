package config

import "context"

// Loader is the interface for a format-specific score loader.
type Loader interface {
	// Load reads every score file found under paths (files or directories)
	// and merges them into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
