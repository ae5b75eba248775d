package widgets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownID is returned when selecting a tab or section that does not
// exist.
var ErrUnknownID = errors.New("widgets: unknown id")

// Tabs tracks which single tab is active.
type Tabs struct {
	IDs    []string
	Active string
}

// NewTabs returns tabs with the first id active.
func NewTabs(ids ...string) (*Tabs, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("tabs: %w", ErrEmpty)
	}
	return &Tabs{IDs: append([]string(nil), ids...), Active: ids[0]}, nil
}

// Select activates id and deactivates every other tab. An unknown id leaves
// the current selection untouched.
func (t *Tabs) Select(id string) error {
	id = strings.TrimSpace(id)
	for _, candidate := range t.IDs {
		if candidate == id {
			t.Active = id
			return nil
		}
	}
	return fmt.Errorf("tabs: %w: %q", ErrUnknownID, id)
}

// IsActive reports whether id is the active tab.
func (t *Tabs) IsActive(id string) bool {
	return t.Active == id
}
