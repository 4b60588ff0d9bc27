// Package template defines the template engine seam used to produce widget
// markup and script tags. The pongo2-backed implementation lives in the
// gotemplate subpackage.
package template
