package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

// Renderer implements render.Renderer for terminal-driven sessions. Every
// answer is validated as soon as it is entered and the field is asked again
// until it passes.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// session holds the answers gathered so far. Signup fields are mirrored into
// values so cross-field checks see the password already entered.
type session struct {
	values    validation.Values
	collected map[string]any
	order     []string
	secret    map[string]bool
}

// Render asks for every field of form in order and returns the accepted
// answers. Secret fields are validated but never written to the output.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	s := &session{
		collected: make(map[string]any, len(form.Fields)),
		secret:    make(map[string]bool, len(form.Fields)),
	}
	if summary := strings.TrimSpace(form.Summary); summary != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+summary); err != nil {
			return nil, err
		}
	}

	for _, field := range form.Fields {
		var err error
		if field.Type == model.FieldTypeBoolean {
			err = r.promptBoolean(ctx, field, s)
		} else {
			err = r.promptString(ctx, field, opts, s)
		}
		if err != nil {
			return nil, err
		}
	}

	if report, gated := finalReport(form, s.values); gated && !report.Valid {
		return nil, &validation.ReportError{Report: report}
	}

	if opts.Success != nil {
		message := opts.Success.Message
		if message == "" {
			message = render.DefaultSuccessMessage
		}
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+message); err != nil {
			return nil, err
		}
	}

	return r.serialize(s.output())
}

func (r *Renderer) promptString(ctx context.Context, field model.Field, opts render.RenderOptions, s *session) error {
	label := field.DisplayLabel()
	help := displayHelp(field)
	signupField, isSignup := signupFieldOf(field)
	rules := collectValidationRules(field)

	defaultVal := ""
	if !field.Secret() {
		defaultVal = opts.Values[field.Name]
	}
	if message := strings.TrimSpace(opts.Errors[field.Name]); message != "" {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
	}

	for attempt := 1; ; attempt++ {
		cfg := InputConfig{
			Message: label,
			Default: defaultVal,
			Help:    help,
		}
		var (
			response string
			err      error
		)
		if field.Secret() {
			response, err = r.driver.Password(ctx, cfg)
		} else {
			response, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		var message string
		if isSignup {
			candidate := s.values
			candidate.Set(signupField, response)
			result, err := validation.Check(signupField, candidate)
			if err != nil {
				return err
			}
			if !result.Valid {
				message = result.Message
			}
		} else if err := rules.validateString(response); err != nil {
			message = fmt.Sprintf("Invalid %s: %v", label, err)
		}

		if message == "" {
			if isSignup {
				s.values.Set(signupField, response)
			}
			s.store(field.Name, response, field.Secret())
			return nil
		}

		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.Name)
		}
	}
}

func (r *Renderer) promptBoolean(ctx context.Context, field model.Field, s *session) error {
	resp, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: field.DisplayLabel(),
		Help:    displayHelp(field),
	})
	if err != nil {
		return err
	}
	s.store(field.Name, resp, false)
	return nil
}

func (s *session) store(name string, value any, secret bool) {
	if _, seen := s.collected[name]; !seen {
		s.order = append(s.order, name)
	}
	s.collected[name] = value
	s.secret[name] = secret
}

func (s *session) output() []entry {
	out := make([]entry, 0, len(s.order))
	for _, name := range s.order {
		if s.secret[name] {
			continue
		}
		out = append(out, entry{name: name, value: s.collected[name]})
	}
	return out
}

// finalReport re-runs the signup validators over every signup field the form
// declares. Forms without signup fields are not gated.
func finalReport(form model.FormModel, values validation.Values) (validation.Report, bool) {
	report := validation.Report{Valid: true}
	for _, field := range form.Fields {
		signupField, ok := signupFieldOf(field)
		if !ok {
			continue
		}
		result, err := validation.Check(signupField, values)
		if err != nil {
			continue
		}
		report.Results = append(report.Results, result)
		report.Valid = report.Valid && result.Valid
	}
	return report, len(report.Results) > 0
}

func signupFieldOf(field model.Field) (validation.Field, bool) {
	parsed, err := validation.ParseField(field.Name)
	if err != nil {
		return "", false
	}
	return parsed, true
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["help"]; h != "" {
		return h
	}
	return field.Description
}

type entry struct {
	name  string
	value any
}

func (r *Renderer) serialize(entries []entry) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		form := url.Values{}
		for _, e := range entries {
			form.Set(e.name, fmt.Sprint(e.value))
		}
		return []byte(form.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&b, "%s=%v\n", e.name, e.value)
		}
		return []byte(b.String()), nil
	default:
		values := make(map[string]any, len(entries))
		for _, e := range entries {
			values[e.name] = e.value
		}
		return json.Marshal(values)
	}
}

// validationRules applies the HTML-level hints of fields that have no
// dedicated validator.
type validationRules struct {
	required bool
	minLen   *int
	maxLen   *int
	pattern  *regexp.Regexp
}

func collectValidationRules(field model.Field) validationRules {
	rules := validationRules{required: field.Required}
	for _, v := range field.Validations {
		switch v.Kind {
		case model.ValidationRuleMinLength:
			if val, ok := parseInt(v.Params["value"]); ok {
				rules.minLen = &val
			}
		case model.ValidationRuleMaxLength:
			if val, ok := parseInt(v.Params["value"]); ok {
				rules.maxLen = &val
			}
		case model.ValidationRulePattern:
			if expr := v.Params["pattern"]; expr != "" {
				if re, err := regexp.Compile(expr); err == nil {
					rules.pattern = re
				}
			}
		}
	}
	return rules
}

func (r validationRules) validateString(value string) error {
	if r.required && strings.TrimSpace(value) == "" {
		return errors.New("required")
	}
	if value == "" {
		return nil
	}
	length := utf8.RuneCountInString(value)
	if r.minLen != nil && length < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && length > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	return val, err == nil
}
