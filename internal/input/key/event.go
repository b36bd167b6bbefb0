package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press delivered by a host.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character without Ctrl, Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && e.Modifiers&(ModCtrl|ModAlt|ModMeta) == 0
}

// IsTab reports whether the physical key is Tab, whatever the modifiers.
func (e Event) IsTab() bool {
	return e.Key == KeyTab
}

// IsEnter reports whether the physical key is Enter, whatever the modifiers.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter
}

// Pattern returns the pattern this event would trigger.
// Upper-case runes fold to lower case with Shift added.
func (e Event) Pattern() Pattern {
	p := Pattern{Key: e.Key, Modifiers: e.Modifiers}
	if e.Key == KeyRune {
		r := e.Rune
		if r == ' ' {
			return Pattern{Key: KeySpace, Modifiers: e.Modifiers}
		}
		if unicode.IsUpper(r) {
			p.Modifiers = p.Modifiers.With(ModShift)
			r = unicode.ToLower(r)
		}
		p.Rune = r
	}
	return p
}

// String returns the event in pattern notation, e.g. "Ctrl+Alt+Right".
func (e Event) String() string {
	return e.Pattern().String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
