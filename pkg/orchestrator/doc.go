// Package orchestrator runs the pipeline from an OpenAPI source to rendered
// form output: load, build the form model, decorate, render.
package orchestrator
