// Package registry provides the central "glue" for the section system.
//
// The Registry maps the section kinds used in score files (e.g., "bass") to
// the compiled Go factories that build them. During application startup every
// module registers its kinds, the loaded score model is validated against the
// catalog, and the declared sections are instantiated into a conductor. This
// keeps score files and Go code in sync before anything is performed.
package registry
