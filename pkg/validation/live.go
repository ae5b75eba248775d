package validation

// Check runs the single validator that owns field. The confirm-password check
// reads the password from values as well.
func Check(field Field, values Values) (Result, error) {
	switch field {
	case FieldUsername:
		return ValidateUsername(values.Username), nil
	case FieldEmail:
		return ValidateEmail(values.Email), nil
	case FieldPassword:
		return ValidatePassword(values.Password), nil
	case FieldConfirmPassword:
		return ValidateConfirmPassword(values.Password, values.ConfirmPassword), nil
	default:
		_, err := ParseField(string(field))
		return Result{}, err
	}
}

// Dependents lists the fields whose result also depends on field.
func Dependents(field Field) []Field {
	if field == FieldPassword {
		return []Field{FieldConfirmPassword}
	}
	return nil
}

// Live re-validates fields as they change, one input event at a time.
type Live struct {
	// RevalidateDependents re-checks dependent fields (confirm password when
	// the password changes) as long as the dependent already holds a value.
	// When false only the changed field is checked.
	RevalidateDependents bool
}

// Changed returns the result for the changed field first, followed by any
// re-checked dependents.
func (l Live) Changed(field Field, values Values) ([]Result, error) {
	result, err := Check(field, values)
	if err != nil {
		return nil, err
	}
	results := []Result{result}
	if !l.RevalidateDependents {
		return results, nil
	}
	for _, dependent := range Dependents(field) {
		if values.Get(dependent) == "" {
			continue
		}
		next, err := Check(dependent, values)
		if err != nil {
			return nil, err
		}
		results = append(results, next)
	}
	return results, nil
}
