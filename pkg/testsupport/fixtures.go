// Package testsupport holds golden-file helpers shared by package tests.
// Set UPDATE_GOLDENS=1 to rewrite goldens from the current output.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// MustLoadFormModel decodes the JSON form model golden at path.
func MustLoadFormModel(t *testing.T, path string) model.FormModel {
	t.Helper()
	form, err := LoadFormModel(path)
	if err != nil {
		t.Fatal(err)
	}
	return form
}

// LoadFormModel is MustLoadFormModel for setup code without a *testing.T.
func LoadFormModel(path string) (form model.FormModel, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("testsupport: read form model: %w", err)
	}
	if err = json.Unmarshal(data, &form); err != nil {
		return form, fmt.Errorf("testsupport: decode %s: %w", path, err)
	}
	return form, nil
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}
