// Package loader reads the base option configuration from files and the
// environment.
//
// Options come from a TOML file, either as top-level keys or inside a [zen]
// table, and are then overridden by ZENAREA_* environment variables.
package loader

import (
	"io/fs"
	"os"

	"github.com/dshills/zenarea/internal/options"
)

// DefaultEnvPrefix prefixes the environment variables read by LoadOptions.
const DefaultEnvPrefix = "ZENAREA_"

// Loader is the interface for option sources.
type Loader interface {
	// Load reads options from the source.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (options.Options, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// LoadOptions merges the sources in order, later ones winning. A nil
// result from a source is skipped.
func LoadOptions(sources ...Loader) (options.Options, error) {
	merged := options.Options{}
	for _, src := range sources {
		opts, err := src.Load()
		if err != nil {
			return nil, err
		}
		for k, v := range opts {
			merged[k] = v
		}
	}
	return merged, nil
}
