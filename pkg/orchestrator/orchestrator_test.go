package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/openapi"
	"github.com/goliatone/go-formcheck/pkg/render"
)

type captureRenderer struct {
	form    model.FormModel
	options render.RenderOptions
}

func (c *captureRenderer) Name() string        { return "capture" }
func (c *captureRenderer) ContentType() string { return "text/plain" }
func (c *captureRenderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	c.form = form
	c.options = opts
	return []byte(form.OperationID), nil
}

func TestGenerate_DefaultsToEmbeddedSignupHTML(t *testing.T) {
	out, err := New().Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(out)
	for _, fragment := range []string{`id="fc-signup"`, `name="confirmPassword"`, `data-fc-error="email"`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output", fragment)
		}
	}
}

func TestGenerate_UsesRegistryDecoratorsAndTheme(t *testing.T) {
	capture := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(capture)

	decorator := model.DecoratorFunc(func(form *model.FormModel) error {
		form.Summary = "Join us"
		return nil
	})
	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(capture.Name()),
		WithDecorators(decorator),
		WithThemeSelection(&theme.Selection{
			Theme:    "acme",
			Manifest: &theme.Manifest{Name: "acme", Tokens: map[string]string{"brand": "#123456"}},
		}),
	)

	out, err := orch.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != openapi.DefaultOperationID {
		t.Fatalf("unexpected output %q", out)
	}
	if capture.form.Summary != "Join us" {
		t.Fatalf("decorator not applied: %q", capture.form.Summary)
	}
	if capture.options.Theme == nil || capture.options.Theme.CSSVars["--brand"] != "#123456" {
		t.Fatalf("theme not passed to renderer: %+v", capture.options.Theme)
	}
}

func TestGenerate_CustomSource(t *testing.T) {
	doc := `openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /join:
    post:
      operationId: join
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                username: {type: string}
      responses:
        "200": {description: ok}
`
	capture := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(capture)

	src := openapi.SourceFromFS(fstest.MapFS{"join.yaml": {Data: []byte(doc)}}, "join.yaml")
	_, err := New(WithRegistry(registry)).Generate(context.Background(), Request{Source: src, OperationID: "join"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if capture.form.Endpoint != "/join" || len(capture.form.Fields) != 1 {
		t.Fatalf("unexpected form %+v", capture.form)
	}
}

func TestGenerate_Errors(t *testing.T) {
	orch := New()
	if _, err := orch.Generate(context.Background(), Request{Renderer: "preact"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, err := orch.Generate(context.Background(), Request{OperationID: "missing"}); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	empty := New(WithRegistry(render.NewRegistry()))
	if _, err := empty.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error with no renderers")
	}
}
