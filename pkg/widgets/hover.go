package widgets

// Hover swaps a panel label while the pointer is over it.
type Hover struct {
	Resting  string
	Hovering string
	Over     bool
}

// NewHover returns the hover panel of the playground.
func NewHover() *Hover {
	return &Hover{Resting: "Hover Over Me!", Hovering: "Woo! Hovering!"}
}

// Enter marks the pointer as over the panel.
func (h *Hover) Enter() string {
	h.Over = true
	return h.Label()
}

// Leave marks the pointer as gone.
func (h *Hover) Leave() string {
	h.Over = false
	return h.Label()
}

func (h *Hover) Label() string {
	if h.Over {
		return h.Hovering
	}
	return h.Resting
}
