// Package validation holds the signup form rules. Every validator is a pure
// function over the current field values: it never mutates input, never keeps
// state between calls and reports outcomes as Result values rather than
// errors, so callers branch on Result.Valid.
//
// The boundary layers (HTML renderer, HTTP handlers, terminal prompts) call
// into this package and apply the returned results to their widgets.
package validation
