package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/validation"
)

func TestParseField(t *testing.T) {
	for _, field := range validation.Fields() {
		got, err := validation.ParseField(" " + string(field) + " ")
		if err != nil {
			t.Fatalf("parse %q: %v", field, err)
		}
		if got != field {
			t.Fatalf("parse %q: got %q", field, got)
		}
	}

	if _, err := validation.ParseField("nickname"); !errors.Is(err, validation.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	values := validation.Values{
		Username:        "",
		Email:           "alice@example.com",
		Password:        "password1",
		ConfirmPassword: "password2",
	}

	got, err := validation.Check(validation.FieldConfirmPassword, values)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.Valid || got.Message != validation.MessagePasswordMismatch {
		t.Fatalf("unexpected confirm result %+v", got)
	}

	got, err = validation.Check(validation.FieldUsername, values)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.Message != validation.MessageUsernameRequired {
		t.Fatalf("unexpected username result %+v", got)
	}

	if _, err := validation.Check("nickname", values); !errors.Is(err, validation.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestLiveChanged(t *testing.T) {
	values := validation.Values{Password: "password1", ConfirmPassword: "password0"}

	t.Run("reference behaviour", func(t *testing.T) {
		results, err := validation.Live{}.Changed(validation.FieldPassword, values)
		if err != nil {
			t.Fatalf("changed: %v", err)
		}
		want := []validation.Result{{Field: validation.FieldPassword, Valid: true}}
		if diff := cmp.Diff(want, results); diff != "" {
			t.Fatalf("results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dependents", func(t *testing.T) {
		results, err := validation.Live{RevalidateDependents: true}.Changed(validation.FieldPassword, values)
		if err != nil {
			t.Fatalf("changed: %v", err)
		}
		want := []validation.Result{
			{Field: validation.FieldPassword, Valid: true},
			{Field: validation.FieldConfirmPassword, Kind: validation.IssueMismatch, Message: validation.MessagePasswordMismatch},
		}
		if diff := cmp.Diff(want, results); diff != "" {
			t.Fatalf("results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("untouched dependent", func(t *testing.T) {
		results, err := validation.Live{RevalidateDependents: true}.Changed(validation.FieldPassword, validation.Values{Password: "short"})
		if err != nil {
			t.Fatalf("changed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected only the password result, got %+v", results)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		if _, err := (validation.Live{}).Changed("nickname", values); !errors.Is(err, validation.ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})
}
