package render_test

import (
	"context"
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/validation"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.FormModel, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("tui"))

	if err := registry.Register(namedRenderer(" tui ")); !errors.Is(err, render.ErrRendererExists) {
		t.Fatalf("expected ErrRendererExists, got %v", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}

	if diff := cmp.Diff([]string{"vanilla", "tui"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vanilla") || registry.Has("preact") {
		t.Fatalf("Has reported wrong membership")
	}
	if _, err := registry.Get("preact"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestSortedHiddenFields(t *testing.T) {
	got := render.SortedHiddenFields(
		render.Hidden(" version ", 3),
		render.CSRFToken("", "first"),
		render.Hidden("", "dropped"),
		render.CSRFToken("_csrf", "second"),
	)
	want := []render.HiddenField{
		{Name: "_csrf", Value: "second"},
		{Name: "version", Value: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if render.SortedHiddenFields() != nil {
		t.Fatalf("expected nil for no fields")
	}
}

func TestMergeHiddenFields(t *testing.T) {
	base := []render.HiddenField{render.Hidden("b", "1"), render.Hidden("a", "2")}
	got := render.MergeHiddenFields(base, render.Hidden("a", "3"), render.Hidden(" c ", "4"), render.Hidden("", "x"))
	want := []render.HiddenField{
		{Name: "b", Value: "1"},
		{Name: "a", Value: "3"},
		{Name: "c", Value: "4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged fields mismatch (-want +got):\n%s", diff)
	}
}

func signupForm() model.FormModel {
	return model.FormModel{Fields: []model.Field{
		{Name: "username", InputType: "text"},
		{Name: "email", InputType: "email"},
		{Name: "password", InputType: "password"},
		{Name: "confirmPassword", InputType: "password"},
	}}
}

func TestReportOptions_Invalid(t *testing.T) {
	values := validation.Values{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password1",
		ConfirmPassword: "password2",
	}
	report := validation.ValidateAll(values)

	opts := render.ReportOptions(signupForm(), values, report, render.NewSuccess("", 0))
	if opts.Success != nil {
		t.Fatalf("success must not be set for an invalid report")
	}
	if diff := cmp.Diff(map[string]string{"confirmPassword": "Passwords do not match."}, opts.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"username": "alice", "email": "alice@example.com"}, opts.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if len(opts.Validated) != 4 {
		t.Fatalf("expected all fields validated, got %v", opts.Validated)
	}
	if opts.Notice != "Please correct the errors in the form." {
		t.Fatalf("unexpected notice %q", opts.Notice)
	}
}

func TestReportOptions_Valid(t *testing.T) {
	values := validation.Values{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
	success := render.NewSuccess("", render.DefaultSuccessTTL)
	opts := render.ReportOptions(signupForm(), values, validation.ValidateAll(values), success)

	if opts.Success == nil || opts.Success.Message != render.DefaultSuccessMessage {
		t.Fatalf("expected default success message, got %+v", opts.Success)
	}
	if opts.Values != nil || opts.Errors != nil || opts.Notice != "" {
		t.Fatalf("expected cleared form, got values=%v errors=%v notice=%q", opts.Values, opts.Errors, opts.Notice)
	}
}

func TestNewSuccess_ClampsNegativeDelay(t *testing.T) {
	if got := render.NewSuccess("done", -1); got.HideAfter != 0 || got.Message != "done" {
		t.Fatalf("unexpected success %+v", got)
	}
}

func TestThemeConfig_MergesVariant(t *testing.T) {
	manifest := &theme.Manifest{
		Name:      "acme",
		Version:   "1.0.0",
		Tokens:    map[string]string{"brand": "#123456", "radius": "4px"},
		Templates: map[string]string{"forms.input": "themes/acme/input.tmpl"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme/",
			Files:  map[string]string{"vanilla.stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{Files: map[string]string{"vanilla.script": "live.dark.js"}},
			},
		},
	}

	cfg := render.ThemeConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest})
	if cfg == nil {
		t.Fatalf("expected renderer config")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected theme identity %s/%s", cfg.Theme, cfg.Variant)
	}
	wantVars := map[string]string{"--brand": "#654321", "--radius": "4px"}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if cfg.Partials["forms.input"] != "themes/acme/input.tmpl" {
		t.Fatalf("expected manifest partial, got %q", cfg.Partials["forms.input"])
	}
	if got := cfg.AssetURL("vanilla.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("vanilla.script"); got != "/assets/themes/acme/live.dark.js" {
		t.Fatalf("unexpected script url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}

	if render.ThemeConfig(nil) != nil || render.ThemeConfig(&theme.Selection{Theme: "x"}) != nil {
		t.Fatalf("expected nil config without a manifest")
	}
}
