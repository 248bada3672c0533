// Package config defines the format-agnostic model of a score file (the
// conductor settings, the ordered section declarations and the score
// payload) and the Loader interface implemented by the HCL and YAML loaders.
//
// The Model is the single source of truth for the registry and the app;
// neither of them knows which file format it came from.
package config
