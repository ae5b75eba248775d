package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isFormSpace reports whether r is whitespace under the rules browsers apply
// when trimming input values. It matches unicode.IsSpace except that U+0085 is
// not trimmed and U+FEFF is.
func isFormSpace(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// trimForm strips leading and trailing whitespace as defined by isFormSpace.
func trimForm(value string) string {
	return strings.TrimFunc(value, isFormSpace)
}

// utf16Len counts UTF-16 code units, the unit browsers use for input length.
// Invalid bytes count as one unit each, like the replacement rune they decode to.
func utf16Len(value string) int {
	n := 0
	for len(value) > 0 {
		r, size := utf8.DecodeRuneInString(value)
		value = value[size:]
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}
