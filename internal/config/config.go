// Package config loads the base option configuration and keeps it current.
//
// Options are read from a TOML file and ZENAREA_* environment variables,
// in that order of precedence (environment wins), and installed into an
// options.Store with Setup. With Watch, every change to the file installs a
// fresh configuration; a file that fails to parse leaves the previous one
// in place.
package config

import (
	"fmt"
	"log/slog"

	"github.com/dshills/zenarea/internal/config/loader"
	"github.com/dshills/zenarea/internal/config/watcher"
	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/options"
)

// Config locates the option sources.
type Config struct {
	path      string
	envPrefix string
	fs        loader.FileSystem
	logger    *slog.Logger
}

// Option configures a Config instance.
type Option func(*Config)

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables environment overrides.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithFileSystem sets the file system the options file is read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Config reading the options file at path. An empty path
// means no file.
func New(path string, opts ...Option) *Config {
	c := &Config{
		path:      path,
		envPrefix: loader.DefaultEnvPrefix,
		fs:        loader.DefaultFS(),
		logger:    log.WithComponent("config"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the options file path.
func (c *Config) Path() string {
	return c.path
}

// Load reads and merges the option sources.
func (c *Config) Load() (options.Options, error) {
	var sources []loader.Loader
	if c.path != "" {
		sources = append(sources, loader.NewTOMLLoaderWithFS(c.fs, c.path))
	}
	if c.envPrefix != "" {
		sources = append(sources, loader.NewEnvLoader(c.envPrefix))
	}
	return loader.LoadOptions(sources...)
}

// Apply loads the options and installs them as the store's base.
func (c *Config) Apply(store *options.Store) error {
	opts, err := c.Load()
	if err != nil {
		return fmt.Errorf("loading options: %w", err)
	}
	store.Setup(opts)
	c.logger.Info("options applied",
		slog.String("path", c.path),
		slog.String("profile", store.Base().String(options.Profile)),
		slog.String("syntax", store.Base().String(options.Syntax)))
	return nil
}

// Watch re-applies the options whenever the options file changes. The
// caller closes the returned watcher.
func (c *Config) Watch(store *options.Store, opts ...watcher.Option) (*watcher.Watcher, error) {
	if c.path == "" {
		return nil, fmt.Errorf("watching options: no file configured")
	}

	w, err := watcher.New(append([]watcher.Option{watcher.WithLogger(c.logger)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("watching options: %w", err)
	}
	w.OnChange(func(ev watcher.Event) {
		if err := c.Apply(store); err != nil {
			c.logger.Warn("reload failed, keeping previous options",
				slog.String("path", ev.Path),
				slog.Any("error", err))
		}
	})
	if err := w.Watch(c.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching options: %w", err)
	}
	return w, nil
}
