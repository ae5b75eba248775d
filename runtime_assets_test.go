package formcheck

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
)

func TestRuntimeAssetsFSContainsLiveScript(t *testing.T) {
	data, err := fs.ReadFile(RuntimeAssetsFS(), vanilla.RuntimeScriptName)
	if err != nil {
		t.Fatalf("expected runtime script to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-fc-error") {
		t.Fatalf("expected runtime script to target error regions")
	}
}

func TestEmbeddedTemplatesContainsForm(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/form.tmpl"); err != nil {
		t.Fatalf("expected form template: %v", err)
	}
}

func TestGenerateHTMLDefaultsToSignup(t *testing.T) {
	out, err := GenerateHTML(context.Background(), nil, "", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `name="confirmPassword"`) {
		t.Fatalf("expected signup form output")
	}
}

func TestValidate(t *testing.T) {
	report := Validate(Values{Username: "alice", Email: "alice@example.com", Password: "password1", ConfirmPassword: "password1"})
	if !report.Valid {
		t.Fatalf("expected valid report, got %+v", report.Messages())
	}
}
