package textarea

import "fmt"

// Selection is a range of runes. Anchor is where the selection started; Head
// is the caret. When Anchor == Head, the selection is just a caret.
type Selection struct {
	Anchor int
	Head   int
}

// Caret creates an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Contains reports whether pos lies in [Start, End).
func (s Selection) Contains(pos int) bool {
	return pos >= s.Start() && pos < s.End()
}

// String returns a human-readable representation.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}
