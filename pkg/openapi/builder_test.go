package openapi_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/openapi"
	"github.com/goliatone/go-formcheck/pkg/testsupport"
)

func TestDefault_SignupForm(t *testing.T) {
	form, err := openapi.Default(context.Background())
	if err != nil {
		t.Fatalf("build default form: %v", err)
	}

	if form.OperationID != "signup" || form.Method != "POST" || form.Endpoint != "/" {
		t.Fatalf("unexpected form header: %+v", form)
	}

	var names []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	wantNames := []string{"username", "email", "password", "confirmPassword"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	password, ok := form.Field("password")
	if !ok {
		t.Fatalf("password field missing")
	}
	want := model.Field{
		Name:         "password",
		Type:         model.FieldTypeString,
		InputType:    "password",
		Required:     true,
		Label:        "Password",
		Description:  "At least 8 characters.",
		Autocomplete: "new-password",
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleRequired},
			{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "8"}},
		},
	}
	if diff := cmp.Diff(want, password); diff != "" {
		t.Fatalf("password field mismatch (-want +got):\n%s", diff)
	}

	email, _ := form.Field("email")
	if email.InputType != "email" || email.Placeholder != "you@example.com" {
		t.Fatalf("unexpected email field: %+v", email)
	}
	if !password.Secret() || email.Secret() {
		t.Fatalf("secret detection wrong")
	}
}

const minimalDoc = `
openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /join:
    put:
      operationId: join
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                zeta: {type: string}
                alpha: {type: string, x-formcheck-label: First, x-formcheck-hint: short}
                agree: {type: boolean}
      responses:
        '200': {description: ok}
  /empty:
    post:
      operationId: empty
      responses:
        '200': {description: ok}
`

func TestBuild_FallbackOrderAndMetadata(t *testing.T) {
	form, err := openapi.Build(context.Background(), []byte(minimalDoc), "join")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Method != "PUT" || form.Endpoint != "/join" {
		t.Fatalf("unexpected endpoint %s %s", form.Method, form.Endpoint)
	}

	var names []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"agree", "alpha", "zeta"}, names); diff != "" {
		t.Fatalf("fallback order mismatch (-want +got):\n%s", diff)
	}

	alpha, _ := form.Field("alpha")
	if alpha.Label != "First" || alpha.Required {
		t.Fatalf("unexpected alpha field: %+v", alpha)
	}
	if diff := cmp.Diff(map[string]string{"hint": "short"}, alpha.Metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}

	agree, _ := form.Field("agree")
	if agree.Type != model.FieldTypeBoolean || agree.InputType != "checkbox" {
		t.Fatalf("unexpected agree field: %+v", agree)
	}
}

func TestBuild_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := openapi.Build(ctx, []byte(minimalDoc), "missing"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := openapi.Build(ctx, []byte(minimalDoc), "empty"); !errors.Is(err, openapi.ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := openapi.Build(ctx, []byte("   "), "join"); err == nil {
		t.Fatalf("expected error for empty document")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := openapi.Build(cancelled, []byte(minimalDoc), "join"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBuild_Decorators(t *testing.T) {
	relabel := model.DecoratorFunc(func(form *model.FormModel) error {
		form.Fields[0].Label = "Renamed"
		return nil
	})
	form, err := openapi.Build(context.Background(), []byte(minimalDoc), "join", relabel)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Label != "Renamed" {
		t.Fatalf("decorator not applied: %+v", form.Fields[0])
	}

	boom := errors.New("boom")
	failing := model.DecoratorFunc(func(*model.FormModel) error { return boom })
	if _, err := openapi.Build(context.Background(), []byte(minimalDoc), "join", failing); !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestLoad_FromFS(t *testing.T) {
	fsys := fstest.MapFS{"docs/join.yaml": &fstest.MapFile{Data: []byte(minimalDoc)}}
	form, err := openapi.Load(context.Background(), openapi.SourceFromFS(fsys, "/docs/join.yaml"), "join")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(form.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(form.Fields))
	}

	if _, err := openapi.Load(context.Background(), openapi.SourceFromFS(fsys, "nope.yaml"), "join"); err == nil {
		t.Fatalf("expected read error")
	}
	if _, err := openapi.Load(context.Background(), nil, "join"); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestDefault_MatchesGolden(t *testing.T) {
	form, err := openapi.Default(context.Background())
	if err != nil {
		t.Fatalf("build default form: %v", err)
	}

	const golden = "testdata/signup_form.golden.json"
	testsupport.WriteGolden(t, golden, form)
	want := testsupport.MustLoadFormModel(t, golden)
	if diff := testsupport.CompareGolden(want, form); diff != "" {
		t.Fatalf("form model mismatch (-want +got):\n%s", diff)
	}
}
