package dispatcher

// Canonical action names.
const (
	ActionExpandAbbreviation   = "expand_abbreviation"
	ActionMatchPairInward      = "match_pair_inward"
	ActionBalanceTagInward     = "balance_tag_inward"
	ActionMatchPairOutward     = "match_pair_outward"
	ActionBalanceTagOutward    = "balance_tag_outward"
	ActionWrapWithAbbreviation = "wrap_with_abbreviation"
	ActionNextEditPoint        = "next_edit_point"
	ActionPrevEditPoint        = "prev_edit_point"
	ActionPreviousEditPoint    = "previous_edit_point"
	ActionPrettyBreak          = "pretty_break"
	ActionFormatLineBreak      = "format_line_break"
	ActionSelectLine           = "select_line"

	// ActionPreviuosEditPoint is the misspelling older keymaps bind to.
	ActionPreviuosEditPoint = "previuos_edit_point"
)

var recognized = []string{
	ActionExpandAbbreviation,
	ActionMatchPairInward,
	ActionBalanceTagInward,
	ActionMatchPairOutward,
	ActionBalanceTagOutward,
	ActionWrapWithAbbreviation,
	ActionNextEditPoint,
	ActionPreviuosEditPoint,
	ActionPrevEditPoint,
	ActionPreviousEditPoint,
	ActionPrettyBreak,
	ActionFormatLineBreak,
	ActionSelectLine,
}

// Actions returns the recognized canonical action names.
func Actions() []string {
	out := make([]string, len(recognized))
	copy(out, recognized)
	return out
}

// IsRecognized reports whether name is a recognized canonical action.
func IsRecognized(name string) bool {
	for _, a := range recognized {
		if a == name {
			return true
		}
	}
	return false
}
