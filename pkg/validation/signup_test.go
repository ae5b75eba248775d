package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/validation"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  validation.Result
	}{
		{"empty", "", validation.Result{Field: validation.FieldUsername, Kind: validation.IssueEmpty, Message: "Username is required."}},
		{"spaces", "   ", validation.Result{Field: validation.FieldUsername, Kind: validation.IssueEmpty, Message: "Username is required."}},
		{"tabs and newlines", "\t\n\r", validation.Result{Field: validation.FieldUsername, Kind: validation.IssueEmpty, Message: "Username is required."}},
		{"nbsp and bom", "\u00a0\ufeff\u3000", validation.Result{Field: validation.FieldUsername, Kind: validation.IssueEmpty, Message: "Username is required."}},
		{"plain", "alice", validation.Result{Field: validation.FieldUsername, Valid: true}},
		{"padded", "  bob  ", validation.Result{Field: validation.FieldUsername, Valid: true}},
		{"next line is content", "\u0085", validation.Result{Field: validation.FieldUsername, Valid: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ValidateUsername(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		value   string
		valid   bool
		message string
	}{
		{"a@b.c", true, ""},
		{"alice@example.com", true, ""},
		{"  alice@example.com  ", true, ""},
		{"first.last@sub.example.co.uk", true, ""},
		{"a@b.c.d", true, ""},
		{"", false, "Email is required."},
		{" \t ", false, "Email is required."},
		{"not-an-email", false, "Please enter a valid email address."},
		{"a@b", false, "Please enter a valid email address."},
		{"@b.c", false, "Please enter a valid email address."},
		{"a@.c", false, "Please enter a valid email address."},
		{"a@b.", false, "Please enter a valid email address."},
		{"a@@b.c", false, "Please enter a valid email address."},
		{"a b@c.d", false, "Please enter a valid email address."},
		{"a@b c.d", false, "Please enter a valid email address."},
	}

	for _, tc := range cases {
		got := validation.ValidateEmail(tc.value)
		if got.Valid != tc.valid || got.Message != tc.message {
			t.Errorf("ValidateEmail(%q) = (%v, %q), want (%v, %q)", tc.value, got.Valid, got.Message, tc.valid, tc.message)
		}
		if got.Field != validation.FieldEmail {
			t.Errorf("ValidateEmail(%q) field = %q", tc.value, got.Field)
		}
	}

	if got := validation.ValidateEmail("nope"); got.Kind != validation.IssueFormatInvalid {
		t.Fatalf("expected format_invalid kind, got %q", got.Kind)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		valid   bool
		kind    validation.IssueKind
		message string
	}{
		{"empty", "", false, validation.IssueEmpty, "Password is required."},
		{"short", "short", false, validation.IssueTooShort, "Password must be at least 8 characters long."},
		{"seven", "1234567", false, validation.IssueTooShort, "Password must be at least 8 characters long."},
		{"eight", "12345678", true, "", ""},
		{"long enough", "longenough1", true, "", ""},
		{"whitespace counts", "        ", true, "", ""},
		{"padded short", " abc ", false, validation.IssueTooShort, "Password must be at least 8 characters long."},
		// Four astral characters are eight UTF-16 code units.
		{"astral", strings.Repeat("😀", 4), true, "", ""},
		{"astral short", strings.Repeat("😀", 3) + "a", false, validation.IssueTooShort, "Password must be at least 8 characters long."},
		{"accented", "ééééééé", false, validation.IssueTooShort, "Password must be at least 8 characters long."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ValidatePassword(tc.value)
			want := validation.Result{Field: validation.FieldPassword, Valid: tc.valid, Kind: tc.kind, Message: tc.message}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		confirm  string
		want     validation.Result
	}{
		{"match", "abcdefgh", "abcdefgh", validation.Result{Field: validation.FieldConfirmPassword, Valid: true}},
		{"mismatch", "abcdefgh", "different", validation.Result{Field: validation.FieldConfirmPassword, Kind: validation.IssueMismatch, Message: "Passwords do not match."}},
		{"empty", "abcdefgh", "", validation.Result{Field: validation.FieldConfirmPassword, Kind: validation.IssueEmpty, Message: "Please confirm your password."}},
		{"case sensitive", "abcdefgh", "ABCDEFGH", validation.Result{Field: validation.FieldConfirmPassword, Kind: validation.IssueMismatch, Message: "Passwords do not match."}},
		{"whitespace significant", "abcdefgh", "abcdefgh ", validation.Result{Field: validation.FieldConfirmPassword, Kind: validation.IssueMismatch, Message: "Passwords do not match."}},
		{"empty password", "", "x", validation.Result{Field: validation.FieldConfirmPassword, Kind: validation.IssueMismatch, Message: "Passwords do not match."}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ValidateConfirmPassword(tc.password, tc.confirm)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidatorsAreIdempotent(t *testing.T) {
	inputs := []string{"", " ", "alice", "a@b.c", "short", "longenough1"}
	for _, in := range inputs {
		if a, b := validation.ValidateUsername(in), validation.ValidateUsername(in); a != b {
			t.Fatalf("username %q not idempotent: %+v vs %+v", in, a, b)
		}
		if a, b := validation.ValidateEmail(in), validation.ValidateEmail(in); a != b {
			t.Fatalf("email %q not idempotent: %+v vs %+v", in, a, b)
		}
		if a, b := validation.ValidatePassword(in), validation.ValidatePassword(in); a != b {
			t.Fatalf("password %q not idempotent: %+v vs %+v", in, a, b)
		}
		if a, b := validation.ValidateConfirmPassword("longenough1", in), validation.ValidateConfirmPassword("longenough1", in); a != b {
			t.Fatalf("confirm %q not idempotent: %+v vs %+v", in, a, b)
		}
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		report := validation.ValidateAll(validation.Values{
			Username:        "alice",
			Email:           "alice@example.com",
			Password:        "password1",
			ConfirmPassword: "password1",
		})
		if !report.Valid {
			t.Fatalf("expected valid report, got %+v", report)
		}
		if len(report.Results) != 4 {
			t.Fatalf("expected 4 results, got %d", len(report.Results))
		}
		if report.Messages() != nil {
			t.Fatalf("expected no messages, got %v", report.Messages())
		}
	})

	t.Run("mismatch only", func(t *testing.T) {
		report := validation.ValidateAll(validation.Values{
			Username:        "alice",
			Email:           "alice@example.com",
			Password:        "password1",
			ConfirmPassword: "password2",
		})
		if report.Valid {
			t.Fatalf("expected invalid report")
		}
		want := map[validation.Field]string{
			validation.FieldConfirmPassword: "Passwords do not match.",
		}
		if diff := cmp.Diff(want, report.Messages()); diff != "" {
			t.Fatalf("messages mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no short circuit", func(t *testing.T) {
		report := validation.ValidateAll(validation.Values{})
		if report.Valid {
			t.Fatalf("expected invalid report")
		}
		wantOrder := validation.Fields()
		if len(report.Results) != len(wantOrder) {
			t.Fatalf("expected %d results, got %d", len(wantOrder), len(report.Results))
		}
		for i, field := range wantOrder {
			if report.Results[i].Field != field {
				t.Fatalf("result %d: want field %q, got %q", i, field, report.Results[i].Field)
			}
			if report.Results[i].Valid {
				t.Fatalf("result %d: expected invalid", i)
			}
		}
		want := map[validation.Field]string{
			validation.FieldUsername:        "Username is required.",
			validation.FieldEmail:           "Email is required.",
			validation.FieldPassword:        "Password is required.",
			validation.FieldConfirmPassword: "Please confirm your password.",
		}
		if diff := cmp.Diff(want, report.Messages()); diff != "" {
			t.Fatalf("messages mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		report := validation.ValidateAll(validation.Values{Username: "x"})
		got, ok := report.Field(validation.FieldUsername)
		if !ok || !got.Valid {
			t.Fatalf("expected valid username result, got %+v (ok=%v)", got, ok)
		}
		if _, ok := report.Field("nickname"); ok {
			t.Fatalf("unexpected result for unknown field")
		}
	})
}

func TestMessageInvariant(t *testing.T) {
	values := []validation.Values{
		{},
		{Username: "alice", Email: "bad", Password: "short", ConfirmPassword: "other"},
		{Username: "alice", Email: "alice@example.com", Password: "password1", ConfirmPassword: "password1"},
	}
	for _, v := range values {
		for _, result := range validation.ValidateAll(v).Results {
			if result.Valid != (result.Message == "") {
				t.Fatalf("message invariant broken for %+v", result)
			}
			if result.Valid != (result.Kind == "") {
				t.Fatalf("kind invariant broken for %+v", result)
			}
		}
	}
}
