// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for finding and parsing score files, decoding them with the
// schema package, and converting cty attribute values into plain Go values.
package hcl
