// Package conductor holds the named sections of an orchestra and drives
// performance passes over them.
//
// Sections are performed in registration order. Each section is isolated:
// an error or panic in one section is recorded in the Report and the pass
// continues, unless fail-fast is enabled, in which case every section that
// has not started yet is skipped. With a concurrency above one, sections run
// in parallel but the Report still lists them in registration order.
//
// Objects that do not implement section.Section may still be registered.
// They are flagged when registered and reported as skipped on every pass.
package conductor
