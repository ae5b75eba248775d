package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/render"
	rendertemplate "github.com/goliatone/go-formcheck/pkg/render/template"
	"github.com/goliatone/go-formcheck/pkg/render/template/gotemplate"
)

const (
	// Theme asset keys resolved through theme.RendererConfig.AssetURL.
	ThemeAssetStylesheet = "vanilla.stylesheet"
	ThemeAssetScript     = "vanilla.script"

	defaultAssetPrefix  = "/assets/"
	defaultLiveEndpoint = "/validate/"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	document         bool
	title            string
	assetPrefix      string
	liveEndpoint     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDocument wraps the form in a complete HTML page with the given title,
// linking the stylesheet and live validation script.
func WithDocument(title string) Option {
	return func(cfg *config) {
		cfg.document = true
		cfg.title = strings.TrimSpace(title)
	}
}

// WithAssetPrefix sets the URL prefix AssetsFS is served under.
func WithAssetPrefix(prefix string) Option {
	return func(cfg *config) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			cfg.assetPrefix = strings.TrimSuffix(prefix, "/") + "/"
		}
	}
}

// WithLiveEndpoint sets the URL prefix the page script posts single-field
// checks to; the field name is appended. An empty value disables live checks.
func WithLiveEndpoint(endpoint string) Option {
	return func(cfg *config) {
		cfg.liveEndpoint = strings.TrimSpace(endpoint)
	}
}

// Renderer produces server-side HTML for a form model.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	document     bool
	title        string
	assetPrefix  string
	liveEndpoint string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		assetPrefix:  defaultAssetPrefix,
		liveEndpoint: defaultLiveEndpoint,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		document:     cfg.document,
		title:        cfg.title,
		assetPrefix:  cfg.assetPrefix,
		liveEndpoint: cfg.liveEndpoint,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form markup. Each field gets an error region that holds
// the field's message when it is invalid and stays empty otherwise.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", r.view(form, opts))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type formView struct {
	ID          string `json:"id"`
	Action      string `json:"action"`
	Method      string `json:"method"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
}

type fieldView struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	InputType    string `json:"input_type"`
	Value        string `json:"value,omitempty"`
	Placeholder  string `json:"placeholder,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
	Required     bool   `json:"required"`
	MinLength    string `json:"min_length,omitempty"`
	MaxLength    string `json:"max_length,omitempty"`
	Description  string `json:"description,omitempty"`
	Error        string `json:"error,omitempty"`
	State        string `json:"state,omitempty"`
}

type successView struct {
	Message     string `json:"message"`
	HideAfterMS string `json:"hide_after_ms,omitempty"`
}

type themeView struct {
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
	Style   string `json:"style,omitempty"`
}

func (r *Renderer) view(form model.FormModel, opts render.RenderOptions) map[string]any {
	method, override := formMethod(form.Method, opts.Method)
	hidden := opts.Hidden
	if override != "" {
		hidden = append(append([]render.HiddenField(nil), hidden...), render.Hidden("_method", override))
	}

	validated := make(map[string]struct{}, len(opts.Validated))
	for _, name := range opts.Validated {
		validated[name] = struct{}{}
	}

	fields := make([]fieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		fields = append(fields, buildField(field, opts, validated))
	}

	view := map[string]any{
		"document": r.document,
		"title":    firstNonEmpty(r.title, form.Summary, "Sign up"),
		"form": formView{
			ID:          "fc-" + firstNonEmpty(form.OperationID, "form"),
			Action:      firstNonEmpty(form.Endpoint, "/"),
			Method:      method,
			Summary:     form.Summary,
			Description: sanitizeDescription(form.Description),
		},
		"fields":     fields,
		"hidden":     render.SortedHiddenFields(hidden...),
		"live":       r.liveEndpoint,
		"stylesheet": r.assetURL(opts.Theme, ThemeAssetStylesheet, StylesheetName),
		"script":     r.assetURL(opts.Theme, ThemeAssetScript, RuntimeScriptName),
		"theme":      buildTheme(opts.Theme),
		"notice":     strings.TrimSpace(opts.Notice),
	}
	if opts.Success != nil {
		success := successView{
			Message: firstNonEmpty(opts.Success.Message, render.DefaultSuccessMessage),
		}
		if ms := opts.Success.HideAfter.Milliseconds(); ms > 0 {
			success.HideAfterMS = strconv.FormatInt(ms, 10)
		}
		view["success"] = success
	}
	return view
}

func buildField(field model.Field, opts render.RenderOptions, validated map[string]struct{}) fieldView {
	view := fieldView{
		Name:         field.Name,
		Label:        field.DisplayLabel(),
		InputType:    firstNonEmpty(field.InputType, "text"),
		Placeholder:  field.Placeholder,
		Autocomplete: field.Autocomplete,
		Required:     field.Required,
		Description:  sanitizeDescription(field.Description),
	}
	if !field.Secret() {
		view.Value = opts.Values[field.Name]
	}
	if rule, ok := field.Rule(model.ValidationRuleMinLength); ok {
		view.MinLength = rule.Params["value"]
	}
	if rule, ok := field.Rule(model.ValidationRuleMaxLength); ok {
		view.MaxLength = rule.Params["value"]
	}

	if message := strings.TrimSpace(opts.Errors[field.Name]); message != "" {
		view.Error = message
		view.State = "invalid"
	} else if _, ok := validated[field.Name]; ok {
		view.State = "valid"
	}
	return view
}

// formMethod maps the requested verb onto what browsers can submit. Verbs
// other than GET and POST are sent as POST with a _method override.
func formMethod(declared, override string) (string, string) {
	method := strings.ToUpper(strings.TrimSpace(firstNonEmpty(override, declared, "POST")))
	switch method {
	case "GET":
		return "get", ""
	case "POST":
		return "post", ""
	default:
		return "post", method
	}
}

func (r *Renderer) assetURL(cfg *theme.RendererConfig, key, name string) string {
	if cfg != nil && cfg.AssetURL != nil {
		if url := strings.TrimSpace(cfg.AssetURL(key)); url != "" {
			return url
		}
	}
	return r.assetPrefix + name
}

func buildTheme(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	return themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(vars[key])
		if !strings.HasPrefix(name, "--") || value == "" || strings.ContainsAny(value, ";{}") {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";")
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
