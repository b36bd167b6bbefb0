package loader

import (
	"os"
	"strings"

	"github.com/dshills/zenarea/internal/options"
)

// EnvLoader loads options from environment variables. ZENAREA_USE_TAB sets
// use_tab; the part after the prefix is lower-cased to form the option name.
type EnvLoader struct {
	prefix string
	lookup func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "ZENAREA_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		lookup: os.Environ,
	}
}

// Load reads the prefixed environment variables.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (options.Options, error) {
	opts := options.Options{}
	for _, env := range l.lookup() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, l.prefix))
		if key == "" {
			continue
		}
		opts[key] = parseValue(value)
	}
	return opts, nil
}

// parseValue turns boolean words into bools and keeps everything else as a
// string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		return s
	}
}
