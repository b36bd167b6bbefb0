// Package manager assembles the shortcut system for one host.
//
// A Manager owns the base configuration, the dispatcher, the recognizer and
// the shortcut registry. Hosts feed it keystrokes with HandleKey and run the
// native key behaviour when the result says so:
//
//	m, err := manager.New(lib, manager.WithPrompter(prompt))
//	...
//	res, matched := m.HandleKey(ev, area)
//	if !matched || res.Propagate() {
//	    native(ev)
//	}
package manager

import (
	"log/slog"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/input/keymap"
	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/options"
	"github.com/dshills/zenarea/internal/recognizer"
	"github.com/dshills/zenarea/internal/shortcut"
	"github.com/dshills/zenarea/internal/widget"
)

// Manager is the public surface of the shortcut system.
type Manager struct {
	store      *options.Store
	dispatcher *dispatcher.Dispatcher
	recognizer *recognizer.Recognizer
	shortcuts  *shortcut.Registry
	logger     *slog.Logger
}

type config struct {
	store        *options.Store
	prompter     dispatcher.Prompter
	logger       *slog.Logger
	metrics      bool
	skipDefaults bool
}

// Option configures a Manager.
type Option func(*config)

// WithStore uses store as the base configuration instead of a fresh one.
func WithStore(store *options.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithPrompter sets the prompt used by wrap_with_abbreviation.
func WithPrompter(p dispatcher.Prompter) Option {
	return func(c *config) {
		c.prompter = p
	}
}

// WithLogger sets the logger shared by the manager's components.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics enables dispatch statistics.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

// WithoutDefaults skips installing the default shortcut table.
func WithoutDefaults() Option {
	return func(c *config) {
		c.skipDefaults = true
	}
}

// New creates a manager running actions from lib. The default shortcut
// table is installed unless WithoutDefaults is given.
func New(lib dispatcher.Library, opts ...Option) (*Manager, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.store == nil {
		cfg.store = options.NewStore()
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.WithComponent("manager")
	}

	dopts := []dispatcher.Option{
		dispatcher.WithPrompter(cfg.prompter),
		dispatcher.WithLogger(cfg.logger),
	}
	if cfg.metrics {
		dopts = append(dopts, dispatcher.WithMetrics())
	}
	d, err := dispatcher.New(cfg.store, lib, dopts...)
	if err != nil {
		return nil, err
	}

	rec := recognizer.New()
	reg, err := shortcut.NewRegistry(rec, d)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		store:      cfg.store,
		dispatcher: d,
		recognizer: rec,
		shortcuts:  reg,
		logger:     logger,
	}
	if !cfg.skipDefaults {
		if err := reg.InstallDefaults(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BindShortcut binds pattern to the action named by label.
func (m *Manager) BindShortcut(pattern, label string) error {
	return m.shortcuts.Bind(pattern, label)
}

// UnbindShortcut removes the binding for pattern, if any.
func (m *Manager) UnbindShortcut(pattern string) {
	m.shortcuts.Unbind(pattern)
}

// ApplyKeymap binds every entry of km; empty actions unbind.
func (m *Manager) ApplyKeymap(km *keymap.Keymap) error {
	if err := m.shortcuts.Apply(km); err != nil {
		return err
	}
	m.logger.Info("keymap applied",
		slog.String("keymap", km.Name),
		slog.String("source", km.Source),
		slog.Int("bindings", len(km.Bindings)))
	return nil
}

// Setup replaces the base configuration with the defaults overlaid by opts.
func (m *Manager) Setup(opts options.Options) {
	m.store.Setup(opts)
}

// GetOption reads an option from the base configuration.
func (m *Manager) GetOption(name string) (any, bool) {
	return m.store.Get(name)
}

// Dispatch runs a canonical action name against target.
func (m *Manager) Dispatch(name string, target widget.Element, ev key.Event) dispatcher.Result {
	return m.dispatcher.Dispatch(name, dispatcher.Event{Target: target, Key: ev})
}

// HandleKey runs the shortcut bound to ev, if any. matched is false when
// no shortcut is bound; the host then applies the native behaviour.
func (m *Manager) HandleKey(ev key.Event, target widget.Element) (res dispatcher.Result, matched bool) {
	return m.recognizer.Handle(ev, target)
}

// Bindings returns the active bindings sorted by pattern.
func (m *Manager) Bindings() []keymap.Binding {
	return m.shortcuts.Bindings()
}

// Keymap exports the active bindings as a keymap.
func (m *Manager) Keymap(name string) *keymap.Keymap {
	return m.shortcuts.Keymap(name)
}

// Store returns the base configuration store.
func (m *Manager) Store() *options.Store {
	return m.store
}

// Metrics returns the dispatch statistics, or nil without WithMetrics.
func (m *Manager) Metrics() *dispatcher.Metrics {
	return m.dispatcher.Metrics()
}

// RegisterPostHook registers a hook run after every dispatch.
func (m *Manager) RegisterPostHook(h dispatcher.PostDispatchHook) {
	m.dispatcher.RegisterPostHook(h)
}
