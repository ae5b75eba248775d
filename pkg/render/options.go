package render

import (
	"time"

	theme "github.com/goliatone/go-theme"
)

// DefaultSuccessTTL is how long a success banner stays visible.
const DefaultSuccessTTL = 5 * time.Second

// DefaultSuccessMessage is shown after an accepted submission.
const DefaultSuccessMessage = "Form submitted successfully!"

// DefaultInvalidMessage is the form level notice shown after a rejected
// submission.
const DefaultInvalidMessage = "Please correct the errors in the form."

// RenderOptions describe per-request data that renderers can use without
// mutating the shared form model.
type RenderOptions struct {
	// Method overrides the HTTP method declared by the form model.
	Method string
	// Values pre-populates controls keyed by field name.
	Values map[string]string
	// Errors carries the current message for each invalid field. A field with
	// no entry renders an empty error region.
	Errors map[string]string
	// Validated lists fields whose result is known, so renderers can mark
	// them valid when they have no error.
	Validated []string
	// Hidden emits additional hidden inputs (CSRF tokens and similar).
	Hidden []HiddenField
	// Notice, when set, renders a form level message next to the submit
	// button.
	Notice string
	// Success, when set, renders the success indicator.
	Success *Success
	// Theme carries resolved go-theme tokens for renderers that support them.
	Theme *theme.RendererConfig
}

// Success describes the indicator shown after an accepted submission.
type Success struct {
	Message string
	// HideAfter is the delay before the indicator hides itself. Zero keeps it
	// visible.
	HideAfter time.Duration
}

// NewSuccess returns a Success with the defaults applied to empty values.
func NewSuccess(message string, hideAfter time.Duration) *Success {
	if message == "" {
		message = DefaultSuccessMessage
	}
	if hideAfter < 0 {
		hideAfter = 0
	}
	return &Success{Message: message, HideAfter: hideAfter}
}
