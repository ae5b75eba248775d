package render

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultCSRFFieldName is the form field the server's CSRF middleware reads.
const DefaultCSRFFieldName = "_csrf"

// HiddenField is a hidden form input emitted alongside the visible fields.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs the hidden field carrying token. An empty name falls
// back to DefaultCSRFFieldName.
func CSRFToken(name, token string) HiddenField {
	if strings.TrimSpace(name) == "" {
		name = DefaultCSRFFieldName
	}
	return Hidden(name, token)
}

// SortedHiddenFields drops empty names, lets later fields win on collisions
// and sorts the result by name for deterministic output.
func SortedHiddenFields(fields ...HiddenField) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	clean := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		clean[name] = field.Value
	}
	if len(clean) == 0 {
		return nil
	}

	names := make([]string, 0, len(clean))
	for name := range clean {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: clean[name]})
	}
	return out
}

// MergeHiddenFields appends extra to base, replacing base entries that share
// a name. Order of first appearance is kept.
func MergeHiddenFields(base []HiddenField, extra ...HiddenField) []HiddenField {
	if len(extra) == 0 {
		return base
	}
	out := make([]HiddenField, 0, len(base)+len(extra))
	index := make(map[string]int, len(base)+len(extra))
	for _, field := range append(append([]HiddenField(nil), base...), extra...) {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		field.Name = name
		if i, ok := index[name]; ok {
			out[i] = field
			continue
		}
		index[name] = len(out)
		out = append(out, field)
	}
	return out
}
