package formcheck

import (
	"context"

	theme "github.com/goliatone/go-theme"

	pkgopenapi "github.com/goliatone/go-formcheck/pkg/openapi"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface validation errors.
type RenderOptions = render.RenderOptions

// Values holds the four signup inputs.
type Values = validation.Values

// Report is the outcome of validating a whole submission.
type Report = validation.Report

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the OpenAPI source, builds a form model for the requested
// operation, and renders it using the named renderer. A nil source and empty
// operation render the built-in signup form.
func GenerateHTML(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// Validate checks a full submission with the signup rules.
func Validate(values Values) Report {
	return validation.ValidateAll(values)
}

// WithTheme passes a resolved go-theme selection through to the orchestrator
// so renderers receive tokens and assets.
func WithTheme(selection *theme.Selection) orchestrator.Option {
	return orchestrator.WithThemeSelection(selection)
}
