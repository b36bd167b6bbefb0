// Package app is the terminal host for the shortcut system.
//
// It shows two editable panes and a status line. The top pane is a text
// area carrying the configured marker; the bottom one is a plain notes pane
// that is not a text area, so shortcuts pressed there fall through to
// native editing. Every keystroke goes to the shortcut manager first and
// gets its native behaviour only when the manager lets it through.
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/zenarea/internal/config"
	"github.com/dshills/zenarea/internal/config/watcher"
	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/keymap"
	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/manager"
	"github.com/dshills/zenarea/internal/options"
	"github.com/dshills/zenarea/internal/plugin/lua"
	"github.com/dshills/zenarea/internal/textarea"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML options file. Empty means defaults only.
	ConfigPath string

	// KeymapPath is a JSON or YAML keymap applied over the defaults.
	KeymapPath string

	// ScriptPath is a Lua script loaded over the default actions.
	ScriptPath string

	// Class is the marker attribute of the editor pane.
	Class string

	// Text is the initial content of the editor pane.
	Text string

	// AltAsMeta reports the terminal's Alt modifier as Meta.
	AltAsMeta bool

	// Watch re-applies the options file when it changes.
	Watch bool
}

// pane is one editable region of the screen.
type pane struct {
	title string
	area  *textarea.Area
	top   int
}

// Application hosts the panes on a tcell screen.
type Application struct {
	screen  tcell.Screen
	manager *manager.Manager
	library *lua.Library
	store   *options.Store
	watcher *watcher.Watcher
	logger  *slog.Logger

	panes     []*pane
	focus     int
	status    string
	prompting *promptState
	altMeta   bool
	quit      bool

	started      bool
	shutdownOnce sync.Once
}

// New creates an application drawing on screen. The screen is initialized
// by Run.
func New(opts Options, screen tcell.Screen) (*Application, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}

	a := &Application{
		screen:  screen,
		store:   options.NewStore(),
		logger:  log.WithComponent("app"),
		altMeta: opts.AltAsMeta,
	}

	if err := a.init(opts); err != nil {
		a.Shutdown()
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	return a, nil
}

func (a *Application) init(opts Options) error {
	var libOpts []lua.Option
	if opts.ScriptPath != "" {
		libOpts = append(libOpts, lua.WithScriptFile(opts.ScriptPath))
	}
	lib, err := lua.NewLibrary(libOpts...)
	if err != nil {
		return err
	}
	a.library = lib

	cfg := config.New(opts.ConfigPath)
	if err := cfg.Apply(a.store); err != nil {
		return err
	}

	a.manager, err = manager.New(lib,
		manager.WithStore(a.store),
		manager.WithPrompter(dispatcher.PromptFunc(a.prompt)),
		manager.WithMetrics())
	if err != nil {
		return err
	}

	if opts.KeymapPath != "" {
		km, err := keymap.LoadFile(opts.KeymapPath)
		if err != nil {
			return err
		}
		if err := a.manager.ApplyKeymap(km); err != nil {
			return err
		}
	}

	if opts.Watch && opts.ConfigPath != "" {
		a.watcher, err = cfg.Watch(a.store)
		if err != nil {
			return err
		}
		a.watcher.OnChange(func(watcher.Event) {
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(reloaded{}))
		})
	}

	notes := textarea.New("", "")
	notes.Tag = "PRE"
	a.panes = []*pane{
		{title: "editor", area: textarea.New(opts.Class, opts.Text)},
		{title: "notes", area: notes},
	}
	a.status = "Ctrl+Q quits"
	return nil
}

// reloaded is posted when the options file has been re-applied.
type reloaded struct{}

// Manager returns the shortcut manager.
func (a *Application) Manager() *manager.Manager {
	return a.manager
}

// Run initializes the screen and processes events until Ctrl+Q.
func (a *Application) Run() error {
	if err := a.start(); err != nil {
		return err
	}
	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.handleEvent(ev)
	}
	return nil
}

func (a *Application) start() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.started = true
	return nil
}

// Shutdown releases the screen, the watcher and the script state.
// It is safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			a.watcher.Close()
		}
		if a.library != nil {
			a.library.Close()
		}
		if a.started {
			a.screen.Fini()
		}
		if a.manager != nil {
			if m := a.manager.Metrics(); m != nil {
				a.logger.Info("session ended",
					slog.Uint64("dispatches", m.TotalDispatches()),
					slog.Uint64("errors", m.TotalErrors()))
			}
		}
	})
}

func (a *Application) focused() *pane {
	return a.panes[a.focus]
}

func (a *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(reloaded); ok {
			a.status = "options reloaded"
		}
	}
}

func (a *Application) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlQ {
		a.quit = true
		return
	}

	kev, ok := convertKey(ev, a.altMeta)
	if !ok {
		return
	}

	p := a.focused()
	res, matched := a.manager.HandleKey(kev, p.area)
	if matched {
		a.report(res)
		if !res.Propagate() {
			return
		}
	}
	a.native(p, kev)
}

func (a *Application) report(res dispatcher.Result) {
	switch {
	case res.Err != nil:
		a.status = fmt.Sprintf("%s failed: %v", res.Action, res.Err)
	case res.Status == dispatcher.StatusUnrecognized:
		a.status = fmt.Sprintf("unknown action %q", res.Action)
	case res.Performed():
		a.status = res.Action
	case res.Status == dispatcher.StatusSuppress:
		a.status = res.Action + " cancelled"
	}
}
