package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/zenarea/internal/options"
)

// Section is the optional table holding the options.
const Section = "zen"

// TOMLLoader loads options from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   fs,
		path: path,
	}
}

// Path returns the configured path.
func (l *TOMLLoader) Path() string {
	return l.path
}

// Load reads options from the configured path.
func (l *TOMLLoader) Load() (options.Options, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads options from a specific path.
func (l *TOMLLoader) LoadFrom(path string) (options.Options, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadFromReader reads options from an io.Reader.
func (l *TOMLLoader) LoadFromReader(r io.Reader) (options.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

// parse decodes TOML data. Keys of the [zen] table override top-level keys.
func parse(source string, data []byte) (options.Options, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		return nil, pe
	}

	opts := options.Options{}
	if err := collect(opts, source, "", doc); err != nil {
		return nil, err
	}
	if zen, ok := doc[Section].(map[string]any); ok {
		if err := collect(opts, source, Section+".", zen); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// collect copies the scalar entries of table into opts. Nested tables
// other than [zen] are ignored.
func collect(opts options.Options, source, prefix string, table map[string]any) error {
	for k, v := range table {
		switch val := v.(type) {
		case map[string]any:
			continue
		case bool:
			opts[k] = val
		case string:
			opts[k] = parseValue(val)
		case int64:
			opts[k] = parseValue(strconv.FormatInt(val, 10))
		case float64:
			opts[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			return &ParseError{
				Path:    source,
				Message: fmt.Sprintf("option %s%s: unsupported value of type %T", prefix, k, v),
			}
		}
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
