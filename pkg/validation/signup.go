package validation

import "regexp"

// MinPasswordLength is the shortest accepted password, counted in UTF-16
// code units.
const MinPasswordLength = 8

const (
	MessageUsernameRequired = "Username is required."
	MessageEmailRequired    = "Email is required."
	MessageEmailInvalid     = "Please enter a valid email address."
	MessagePasswordRequired = "Password is required."
	MessagePasswordTooShort = "Password must be at least 8 characters long."
	MessageConfirmRequired  = "Please confirm your password."
	MessagePasswordMismatch = "Passwords do not match."
)

// formSpaceClass lists the characters isFormSpace accepts, for use inside a
// regexp character class.
const formSpaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// emailPattern is a coarse syntactic check: something@something.something with
// no whitespace or extra '@' in any part. It is not RFC 5322 validation.
var emailPattern = regexp.MustCompile(
	`^[^` + formSpaceClass + `@]+@[^` + formSpaceClass + `@]+\.[^` + formSpaceClass + `@]+$`,
)

// ValidateUsername requires a value with at least one non-whitespace
// character.
func ValidateUsername(value string) Result {
	if trimForm(value) == "" {
		return invalid(FieldUsername, IssueEmpty, MessageUsernameRequired)
	}
	return valid(FieldUsername)
}

// ValidateEmail trims the value, then requires it to be present and shaped
// like an address.
func ValidateEmail(value string) Result {
	trimmed := trimForm(value)
	if trimmed == "" {
		return invalid(FieldEmail, IssueEmpty, MessageEmailRequired)
	}
	if !emailPattern.MatchString(trimmed) {
		return invalid(FieldEmail, IssueFormatInvalid, MessageEmailInvalid)
	}
	return valid(FieldEmail)
}

// ValidatePassword requires at least MinPasswordLength code units. Whitespace
// is significant and is not trimmed.
func ValidatePassword(value string) Result {
	if value == "" {
		return invalid(FieldPassword, IssueEmpty, MessagePasswordRequired)
	}
	if utf16Len(value) < MinPasswordLength {
		return invalid(FieldPassword, IssueTooShort, MessagePasswordTooShort)
	}
	return valid(FieldPassword)
}

// ValidateConfirmPassword requires confirm to be present and byte-for-byte
// equal to password.
func ValidateConfirmPassword(password, confirm string) Result {
	if confirm == "" {
		return invalid(FieldConfirmPassword, IssueEmpty, MessageConfirmRequired)
	}
	if confirm != password {
		return invalid(FieldConfirmPassword, IssueMismatch, MessagePasswordMismatch)
	}
	return valid(FieldConfirmPassword)
}

// ValidateAll runs every field validator, even after a failure, so all
// messages can be shown at once.
func ValidateAll(values Values) Report {
	results := []Result{
		ValidateUsername(values.Username),
		ValidateEmail(values.Email),
		ValidatePassword(values.Password),
		ValidateConfirmPassword(values.Password, values.ConfirmPassword),
	}
	report := Report{Valid: true, Results: results}
	for _, result := range results {
		report.Valid = report.Valid && result.Valid
	}
	return report
}
