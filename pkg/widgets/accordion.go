package widgets

import "fmt"

// Accordion keeps at most one section expanded.
type Accordion struct {
	Sections []string
	// Open is the index of the expanded section, -1 when all are collapsed.
	Open int
}

// NewAccordion returns an accordion with every section collapsed.
func NewAccordion(sections ...string) (*Accordion, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("accordion: %w", ErrEmpty)
	}
	return &Accordion{Sections: append([]string(nil), sections...), Open: -1}, nil
}

// Toggle expands section i and collapses any other open one. Toggling the
// open section collapses it. It reports whether i is now expanded.
func (a *Accordion) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(a.Sections) {
		return false, fmt.Errorf("accordion: %w: %d", ErrUnknownID, i)
	}
	if a.Open == i {
		a.Open = -1
		return false, nil
	}
	a.Open = i
	return true, nil
}

// IsOpen reports whether section i is expanded.
func (a *Accordion) IsOpen(i int) bool {
	return a.Open == i
}
