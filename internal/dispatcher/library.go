package dispatcher

import (
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/widget"
)

// Direction selects which way pair matching grows the selection.
type Direction uint8

const (
	// DirIn narrows to the content of the enclosing pair.
	DirIn Direction = iota
	// DirOut widens to the next enclosing pair.
	DirOut
)

// String returns "in" or "out".
func (d Direction) String() string {
	if d == DirOut {
		return "out"
	}
	return "in"
}

// Library is the editing-action library. Every operation receives the target
// area explicitly; there is no shared "current target".
type Library interface {
	ExpandAbbreviation(target widget.Element, syntax, profile string) error
	ExpandAbbreviationWithTab(target widget.Element, syntax, profile string) error
	WrapWithAbbreviation(target widget.Element, abbr, syntax, profile string) error
	MatchPair(target widget.Element, dir Direction) error
	NextEditPoint(target widget.Element) error
	PrevEditPoint(target widget.Element) error
	InsertFormattedNewline(target widget.Element) error
	SelectLine(target widget.Element) error
}

// Prompter asks the user for a line of text and blocks until they answer.
// ok is false when the user cancels.
type Prompter interface {
	Prompt(title, defaultValue string) (value string, ok bool)
}

// PromptFunc is a function adapter for Prompter.
type PromptFunc func(title, defaultValue string) (string, bool)

// Prompt implements Prompter.
func (f PromptFunc) Prompt(title, defaultValue string) (string, bool) {
	return f(title, defaultValue)
}

// Event is a keystroke as seen by the dispatcher.
type Event struct {
	// Target is the element the keystroke was delivered to.
	Target widget.Element

	// Key is the physical keystroke.
	Key key.Event
}

// Library operation names, as reported in Result.Operation.
const (
	OpExpandAbbreviation        = "expand_abbreviation"
	OpExpandAbbreviationWithTab = "expand_abbreviation_with_tab"
	OpWrapWithAbbreviation      = "wrap_with_abbreviation"
	OpMatchPair                 = "match_pair"
	OpNextEditPoint             = "next_edit_point"
	OpPrevEditPoint             = "prev_edit_point"
	OpInsertFormattedNewline    = "insert_formatted_newline"
	OpSelectLine                = "select_line"
)
