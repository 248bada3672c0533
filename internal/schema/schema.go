// Package schema holds the gohcl decoding targets for HCL score files.
package schema

import "github.com/hashicorp/hcl/v2"

// ScoreFile represents the top-level structure of a score file.
type ScoreFile struct {
	Conductors []*Conductor `hcl:"conductor,block"`
	Sections   []*Section   `hcl:"section,block"`
	Scores     []*Score     `hcl:"score,block"`
}

// Conductor represents the optional `conductor` block.
type Conductor struct {
	Concurrency *int    `hcl:"concurrency,optional"`
	FailFast    *bool   `hcl:"fail_fast,optional"`
	Timeout     *string `hcl:"timeout,optional"`
}

// Section represents a `section "<kind>" "<name>"` block. Its body holds
// free-form options for the section.
type Section struct {
	Kind    string   `hcl:"kind,label"`
	Name    string   `hcl:"name,label"`
	Options hcl.Body `hcl:",remain"`
}

// Score represents a `score` block whose attributes form the payload.
type Score struct {
	Body hcl.Body `hcl:",remain"`
}
