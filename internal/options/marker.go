package options

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkerPrefix starts every override token in a marker attribute.
const MarkerPrefix = "zc"

// Override is one zc-<key>-<value> token after coercion.
type Override struct {
	Key   string
	Value any
}

// ParseMarker extracts the override tokens of a marker attribute in
// left-to-right order. The prefix must start a word; key and value are runs
// of [A-Za-z0-9_]. Parsing keeps no state between calls.
func ParseMarker(marker string) []Override {
	var out []Override
	lower := cases.Lower(language.Und)

	for i := 0; i < len(marker); {
		if i > 0 && isWordByte(marker[i-1]) {
			i++
			continue
		}
		key, value, end, ok := matchToken(marker, i)
		if !ok {
			i++
			continue
		}
		out = append(out, Override{
			Key:   lower.String(key),
			Value: coerce(lower.String(value)),
		})
		i = end
	}
	return out
}

// Resolve copies base and applies the marker's overrides; later tokens win.
func Resolve(base Options, marker string) Options {
	resolved := base.Clone()
	for _, o := range ParseMarker(marker) {
		resolved[o.Key] = o.Value
	}
	return resolved
}

// matchToken tries to read zc-<key>-<value> at position i.
func matchToken(s string, i int) (key, value string, end int, ok bool) {
	head := len(MarkerPrefix) + 1
	if i+head > len(s) || !strings.EqualFold(s[i:i+len(MarkerPrefix)], MarkerPrefix) || s[i+len(MarkerPrefix)] != '-' {
		return "", "", 0, false
	}

	keyStart := i + head
	keyEnd := scanWord(s, keyStart)
	if keyEnd == keyStart || keyEnd >= len(s) || s[keyEnd] != '-' {
		return "", "", 0, false
	}

	valueStart := keyEnd + 1
	valueEnd := scanWord(s, valueStart)
	if valueEnd == valueStart {
		return "", "", 0, false
	}
	return s[keyStart:keyEnd], s[valueStart:valueEnd], valueEnd, true
}

func scanWord(s string, i int) int {
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func coerce(v string) any {
	switch v {
	case "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	default:
		return v
	}
}
