package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptyPattern   = errors.New("empty key pattern")
	ErrInvalidPattern = errors.New("invalid key pattern")
)

// Pattern is a platform-neutral key combination: a modifier set plus one key.
// Patterns are comparable and used directly as map keys.
type Pattern struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// String returns the canonical notation, e.g. "Shift+Meta+D" or "Tab".
func (p Pattern) String() string {
	var name string
	if p.Key == KeyRune {
		name = string(unicode.ToUpper(p.Rune))
	} else {
		name = p.Key.String()
	}
	if mods := p.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// IsZero reports whether p is the zero pattern.
func (p Pattern) IsZero() bool {
	return p == Pattern{}
}

// ParsePattern parses a pattern specification such as "Meta+E", "Tab" or
// "Ctrl+Alt+Right". Names are case-insensitive.
func ParsePattern(spec string) (Pattern, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Pattern{}, ErrEmptyPattern
	}

	// "Ctrl++" binds the plus key itself
	var parts []string
	if strings.HasSuffix(spec, "++") {
		parts = append(strings.Split(spec[:len(spec)-2], "+"), "+")
	} else {
		parts = strings.Split(spec, "+")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Pattern{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidPattern, strings.TrimSpace(p), spec)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Pattern{}, fmt.Errorf("%w: missing key in %q", ErrInvalidPattern, spec)
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return Pattern{Key: k, Modifiers: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Pattern{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidPattern, keyPart, spec)
	}
	r := runes[0]
	if r == ' ' {
		return Pattern{Key: KeySpace, Modifiers: mods}, nil
	}
	return Pattern{Key: KeyRune, Rune: unicode.ToLower(r), Modifiers: mods}, nil
}

// MustParsePattern parses a pattern and panics on error.
// Use only for known-valid specs in initialization code.
func MustParsePattern(spec string) Pattern {
	p, err := ParsePattern(spec)
	if err != nil {
		panic("invalid key pattern: " + spec + ": " + err.Error())
	}
	return p
}

// NormalizePattern parses and re-formats a pattern to its canonical form.
func NormalizePattern(spec string) (string, error) {
	p, err := ParsePattern(spec)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
