package widgets

// Toggle flips a button between its resting and active labels.
type Toggle struct {
	Off string
	On  string
	Set bool
}

// NewTextToggle returns the "change my text" button of the playground.
func NewTextToggle() *Toggle {
	return &Toggle{Off: "Change My Text", On: "Text Changed! Click Again."}
}

// Flip inverts the state and returns the new label.
func (t *Toggle) Flip() string {
	t.Set = !t.Set
	return t.Label()
}

// Label returns the text for the current state.
func (t *Toggle) Label() string {
	if t.Set {
		return t.On
	}
	return t.Off
}
