// Package template defines the template seam renderers depend on. The
// gotemplate subpackage provides the pongo2-backed implementation.
package template
