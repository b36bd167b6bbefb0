package dispatcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize turns an action label into its canonical key: surrounding
// whitespace is trimmed, inner whitespace runs become "_", and the result is
// lower-cased. Normalize is idempotent.
func Normalize(label string) string {
	return cases.Lower(language.Und).String(strings.Join(strings.Fields(label), "_"))
}
