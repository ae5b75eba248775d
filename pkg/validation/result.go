package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Field names one of the four signup inputs. The string value doubles as the
// HTML input name and the JSON key.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists the signup fields in display order.
func Fields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
}

// ErrUnknownField is returned when a caller names a field outside Fields().
var ErrUnknownField = errors.New("validation: unknown field")

// ParseField resolves a field name as sent by a form or URL segment.
func ParseField(name string) (Field, error) {
	trimmed := strings.TrimSpace(name)
	for _, field := range Fields() {
		if string(field) == trimmed {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// IssueKind classifies why a field failed. The zero value means no issue.
type IssueKind string

const (
	IssueEmpty         IssueKind = "empty"
	IssueFormatInvalid IssueKind = "format_invalid"
	IssueTooShort      IssueKind = "too_short"
	IssueMismatch      IssueKind = "mismatch"
)

// Result is the outcome of checking one field. Message is empty exactly when
// Valid is true.
type Result struct {
	Field   Field     `json:"field"`
	Valid   bool      `json:"valid"`
	Message string    `json:"message,omitempty"`
	Kind    IssueKind `json:"kind,omitempty"`
}

func valid(field Field) Result {
	return Result{Field: field, Valid: true}
}

func invalid(field Field, kind IssueKind, message string) Result {
	return Result{Field: field, Kind: kind, Message: message}
}

// Values carries the raw input of the four fields as entered by the user.
type Values struct {
	Username        string `json:"username" form:"username" validate:"fc_username"`
	Email           string `json:"email" form:"email" validate:"fc_email"`
	Password        string `json:"password" form:"password" validate:"fc_password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"fc_confirm"`
}

// Get returns the raw value of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldUsername:
		return v.Username
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	default:
		return ""
	}
}

// Set stores value under field. Unknown fields are ignored.
func (v *Values) Set(field Field, value string) {
	switch field {
	case FieldUsername:
		v.Username = value
	case FieldEmail:
		v.Email = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	}
}

// Report is the whole-form outcome: the conjunction of the four results plus
// every individual result in field order.
type Report struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
}

// Field returns the result recorded for field.
func (r Report) Field(field Field) (Result, bool) {
	for _, result := range r.Results {
		if result.Field == field {
			return result, true
		}
	}
	return Result{}, false
}

// Messages maps every invalid field to its message. Valid fields are absent.
func (r Report) Messages() map[Field]string {
	if r.Valid {
		return nil
	}
	out := make(map[Field]string, len(r.Results))
	for _, result := range r.Results {
		if !result.Valid {
			out[result.Field] = result.Message
		}
	}
	return out
}
