// Package options resolves the configuration an action runs with.
//
// A process-wide base configuration (Store) holds the defaults, replaced as a
// whole by Setup. Each dispatch derives a fresh snapshot from the base plus
// the overrides declared in the target element's marker attribute:
//
//	<textarea class="editor zc-syntax-css zc-profile-plain zc-use_tab-yes">
//
// Tokens have the form zc-<key>-<value>. Values true/yes/1 and false/no/0
// become booleans; anything else is kept as a lower-case string.
package options

import (
	"maps"
	"sort"
	"strconv"
	"sync"
)

// Recognized option names.
const (
	Profile     = "profile"
	Syntax      = "syntax"
	UseTab      = "use_tab"
	PrettyBreak = "pretty_break"
)

// Options maps option names to values. A value is either a string or a bool;
// other types are tolerated but read through String and Bool.
type Options map[string]any

// Defaults returns a fresh copy of the system defaults.
func Defaults() Options {
	return Options{
		Profile:     "xhtml",
		Syntax:      "html",
		UseTab:      false,
		PrettyBreak: false,
	}
}

// Clone returns a shallow copy. Values are immutable scalars.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// String returns the value of name as a string. Booleans format as
// "true"/"false"; a missing key yields "".
func (o Options) String(name string) string {
	switch v := o[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Bool returns the truthiness of name. A boolean is itself; a string is true
// when non-empty, so an override like zc-use_tab-on enables the flag.
func (o Options) Bool(name string) bool {
	switch v := o[name].(type) {
	case bool:
		return v
	case string:
		return v != ""
	default:
		return false
	}
}

// Keys returns the option names in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Store holds the base configuration.
type Store struct {
	mu   sync.RWMutex
	base Options
}

// NewStore creates a store holding the defaults.
func NewStore() *Store {
	return &Store{base: Defaults()}
}

// Setup replaces the base configuration with the defaults overlaid by
// overrides. Only default keys are copied; previous Setup calls leave no trace.
func (s *Store) Setup(overrides Options) {
	next := Defaults()
	for k := range next {
		if v, ok := overrides[k]; ok {
			next[k] = v
		}
	}

	s.mu.Lock()
	s.base = next
	s.mu.Unlock()
}

// Get reads an option from the base configuration.
func (s *Store) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.base[name]
	return v, ok
}

// Base returns a copy of the base configuration.
func (s *Store) Base() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base.Clone()
}

// Resolve returns the base configuration with the marker's overrides applied.
func (s *Store) Resolve(marker string) Options {
	return Resolve(s.Base(), marker)
}
