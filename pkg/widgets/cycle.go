package widgets

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CycleDefault is the value that clears any colour and restores the resting
// label.
const CycleDefault = "default"

// DefaultColors is the colour rotation used by the playground button.
var DefaultColors = []string{"blue", "red", "green", "yellow", CycleDefault}

// Cycle rotates a button through a list of colour classes.
type Cycle struct {
	Values []string
	Index  int
	// RestingLabel is shown while the default value is active.
	RestingLabel string
}

// NewCycle returns a cycle starting on the first value.
func NewCycle(values ...string) (*Cycle, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("cycle: %w", ErrEmpty)
	}
	return &Cycle{
		Values:       append([]string(nil), values...),
		RestingLabel: "Change My Color",
	}, nil
}

// Next moves to the following value and returns it.
func (c *Cycle) Next() string {
	c.Index = wrap(c.Index+1, len(c.Values))
	return c.Current()
}

// At moves to i, wrapped into range, and returns the value there.
func (c *Cycle) At(i int) string {
	c.Index = wrap(i, len(c.Values))
	return c.Current()
}

// Current returns the active value.
func (c *Cycle) Current() string {
	if len(c.Values) == 0 {
		return CycleDefault
	}
	return c.Values[wrap(c.Index, len(c.Values))]
}

// Class is the CSS class to apply, empty for the default value.
func (c *Cycle) Class() string {
	if value := c.Current(); value != CycleDefault {
		return value
	}
	return ""
}

// Label is the button text for the active value.
func (c *Cycle) Label() string {
	value := c.Current()
	if value == CycleDefault {
		return c.RestingLabel
	}
	return "Color: " + capitalize(value)
}

func capitalize(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + strings.TrimPrefix(value, value[:size])
}
