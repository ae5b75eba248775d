package widgets

import "time"

// Secret is the way the secret panel was last revealed.
type Secret int

const (
	SecretHidden Secret = iota
	SecretDoubleClick
	SecretLongPress
)

const (
	// LongPressThreshold is how long a press must be held to count as a
	// long press.
	LongPressThreshold = time.Second
	// DoubleClickReveal and LongPressReveal are how long each secret stays
	// visible before the panel returns to its prompt.
	DoubleClickReveal = 3 * time.Second
	LongPressReveal   = 4 * time.Second

	SecretPrompt     = "Double Click or Long Press Me for a Secret!"
	DoubleClickLabel = "Double Click Secret Revealed!"
	LongPressLabel   = "Long Press Secret Revealed!"
	SecretMessage    = "🤫 Wow, you found the secret!"
	LongPressMessage = "🤫 Wow, you found the LONG PRESS secret!"

	// ClickMessage is the notice shown by the click-me button.
	ClickMessage = "Button Clicked! You rock! 🎉"
)

// Press tracks the secret panel: a double click or a press held for
// Threshold reveals a message that hides itself again after a while.
// Callers pass the event times so the detector stays clock free.
type Press struct {
	Threshold time.Duration

	pressedAt time.Time
	pressing  bool
	revealed  Secret
	until     time.Time
}

// NewPress returns a detector using LongPressThreshold.
func NewPress() *Press {
	return &Press{Threshold: LongPressThreshold}
}

// Down starts a press at the given time.
func (p *Press) Down(at time.Time) {
	p.advance(at)
	p.pressedAt = at
	p.pressing = true
}

// Up releases the press. A press held for at least Threshold has already
// revealed the long press secret by the time it is released.
func (p *Press) Up(at time.Time) Secret {
	return p.release(at)
}

// Leave ends the press when the pointer leaves the panel; it behaves like Up.
func (p *Press) Leave(at time.Time) Secret {
	return p.release(at)
}

// Cancel drops a pending press without revealing anything.
func (p *Press) Cancel() {
	p.pressing = false
}

// DoubleClick reveals the double click secret at the given time.
func (p *Press) DoubleClick(at time.Time) Secret {
	p.advance(at)
	p.reveal(SecretDoubleClick, at, DoubleClickReveal)
	return p.State(at)
}

// State reports which secret is visible at the given time.
func (p *Press) State(at time.Time) Secret {
	p.advance(at)
	if p.revealed == SecretHidden || !at.Before(p.until) {
		return SecretHidden
	}
	return p.revealed
}

// Label is the panel text at the given time.
func (p *Press) Label(at time.Time) string {
	switch p.State(at) {
	case SecretDoubleClick:
		return DoubleClickLabel
	case SecretLongPress:
		return LongPressLabel
	default:
		return SecretPrompt
	}
}

// Message is the revealed message, empty while hidden.
func (p *Press) Message(at time.Time) string {
	switch p.State(at) {
	case SecretDoubleClick:
		return SecretMessage
	case SecretLongPress:
		return LongPressMessage
	default:
		return ""
	}
}

// HideAfter is how long the visible secret has left, zero while hidden.
func (p *Press) HideAfter(at time.Time) time.Duration {
	if p.State(at) == SecretHidden {
		return 0
	}
	return p.until.Sub(at)
}

func (p *Press) release(at time.Time) Secret {
	p.advance(at)
	p.pressing = false
	return p.State(at)
}

// advance fires a long press whose threshold elapsed before at.
func (p *Press) advance(at time.Time) {
	if !p.pressing {
		return
	}
	fired := p.pressedAt.Add(p.Threshold)
	if at.Before(fired) {
		return
	}
	p.pressing = false
	p.reveal(SecretLongPress, fired, LongPressReveal)
}

func (p *Press) reveal(kind Secret, at time.Time, ttl time.Duration) {
	p.revealed = kind
	p.until = at.Add(ttl)
}
