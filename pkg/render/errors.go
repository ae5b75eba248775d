package render

import (
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// FieldErrors maps each result to the Errors/Validated pair of RenderOptions.
// Invalid results contribute their message; every result is listed as
// validated.
func FieldErrors(results ...validation.Result) (map[string]string, []string) {
	if len(results) == 0 {
		return nil, nil
	}
	errs := make(map[string]string)
	validated := make([]string, 0, len(results))
	for _, result := range results {
		name := string(result.Field)
		validated = append(validated, name)
		if !result.Valid {
			errs[name] = result.Message
		}
	}
	if len(errs) == 0 {
		errs = nil
	}
	return errs, validated
}

// FieldValues converts submitted values into RenderOptions.Values, skipping
// fields the form marks as secret so passwords are never written back into
// markup.
func FieldValues(form model.FormModel, values validation.Values) map[string]string {
	out := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		if field.Secret() {
			continue
		}
		parsed, err := validation.ParseField(field.Name)
		if err != nil {
			continue
		}
		if value := values.Get(parsed); value != "" {
			out[field.Name] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ReportOptions builds the options used to re-render a form after a submit.
// A valid report yields a cleared form with the success indicator; an invalid
// one keeps non-secret values, shows every message at once and adds the
// DefaultInvalidMessage notice.
func ReportOptions(form model.FormModel, values validation.Values, report validation.Report, success *Success) RenderOptions {
	if report.Valid {
		return RenderOptions{Success: success}
	}
	errs, validated := FieldErrors(report.Results...)
	return RenderOptions{
		Values:    FieldValues(form, values),
		Errors:    errs,
		Validated: validated,
		Notice:    DefaultInvalidMessage,
	}
}
