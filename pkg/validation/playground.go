package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Struct tags understood by StructValidator.
const (
	TagUsername = "fc_username"
	TagEmail    = "fc_email"
	TagPassword = "fc_password"
	TagConfirm  = "fc_confirm"
)

// ReportError wraps an invalid Report so it can travel through APIs that only
// speak error, such as echo's Validator hook.
type ReportError struct {
	Report Report
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("validation: %d invalid field(s)", len(e.Report.Messages()))
}

// valuer is implemented by request types that can expose signup values.
type valuer interface {
	SignupValues() Values
}

// SignupValues lets Values satisfy valuer directly.
func (v Values) SignupValues() Values {
	return v
}

// StructValidator validates tagged structs through go-playground/validator
// using the signup rules of this package.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a validator with the fc_* tags registered.
func NewStructValidator() (*StructValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidators(v); err != nil {
		return nil, err
	}
	return &StructValidator{validate: v}, nil
}

// RegisterValidators installs the fc_* tags on an existing validator
// instance. fc_confirm compares against the sibling field named Password.
func RegisterValidators(v *validator.Validate) error {
	if v == nil {
		return errors.New("validation: validator instance is nil")
	}
	rules := map[string]validator.Func{
		TagUsername: func(fl validator.FieldLevel) bool {
			return ValidateUsername(fl.Field().String()).Valid
		},
		TagEmail: func(fl validator.FieldLevel) bool {
			return ValidateEmail(fl.Field().String()).Valid
		},
		TagPassword: func(fl validator.FieldLevel) bool {
			return ValidatePassword(fl.Field().String()).Valid
		},
		TagConfirm: func(fl validator.FieldLevel) bool {
			return ValidateConfirmPassword(siblingPassword(fl), fl.Field().String()).Valid
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validation: register %s: %w", tag, err)
		}
	}
	return nil
}

func siblingPassword(fl validator.FieldLevel) string {
	parent := fl.Parent()
	for parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return ""
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return ""
	}
	field := parent.FieldByName("Password")
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

// Validate checks value against its struct tags. When value carries signup
// values, a failure is returned as *ReportError with every field's result;
// other validator failures are returned unchanged.
func (s *StructValidator) Validate(value any) error {
	err := s.validate.Struct(value)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	source, ok := value.(valuer)
	if !ok {
		return err
	}
	report := ValidateAll(source.SignupValues())
	if report.Valid {
		return err
	}
	return &ReportError{Report: report}
}
