// Package model defines the form model consumed by renderers. A FormModel is
// built once (see pkg/openapi) and shared read-only between requests; per
// request data such as submitted values or error messages travels in
// render.RenderOptions instead.
//
// ValidationRule entries are presentation hints (minlength, pattern, ...)
// that renderers map onto HTML attributes. The rules that decide whether a
// submission is accepted live in pkg/validation.
package model
