package widgets

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyEcho remembers the last key pressed in the echo input.
type KeyEcho struct {
	Key  string
	Code string
}

// Press records a key. An empty code is derived from the key with CodeFor.
func (k *KeyEcho) Press(key, code string) string {
	if code == "" {
		code = CodeFor(key)
	}
	k.Key, k.Code = key, code
	return k.Text()
}

// Text is the echo line, empty until a key was pressed.
func (k *KeyEcho) Text() string {
	if k.Key == "" {
		return ""
	}
	return fmt.Sprintf("Key pressed: %s (Code: %s)", k.Key, k.Code)
}

// CodeFor maps a key value to the physical key code a US layout reports
// for it. Keys without a known code map to themselves.
func CodeFor(key string) string {
	if key == " " {
		return "Space"
	}
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return key
	}
	switch {
	case r <= unicode.MaxASCII && unicode.IsLetter(r):
		return "Key" + strings.ToUpper(key)
	case r >= '0' && r <= '9':
		return "Digit" + key
	}
	return key
}
