package lua

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/textarea"
	"github.com/dshills/zenarea/internal/widget"
)

//go:embed default.lua
var defaultScript string

// Library runs editing actions defined in Lua against text areas.
type Library struct {
	state  *State
	logger *slog.Logger

	timeout time.Duration
	scripts []script
}

type script struct {
	name   string
	source string
	path   string
}

// Option configures a Library.
type Option func(*Library)

// WithScript adds Lua source run after the default script.
func WithScript(name, source string) Option {
	return func(l *Library) {
		l.scripts = append(l.scripts, script{name: name, source: source})
	}
}

// WithScriptFile adds a Lua file run after the default script.
func WithScriptFile(path string) Option {
	return func(l *Library) {
		l.scripts = append(l.scripts, script{name: path, path: path})
	}
}

// WithTimeout bounds each action call.
func WithTimeout(d time.Duration) Option {
	return func(l *Library) {
		l.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLibrary creates a library running the default script followed by any
// configured scripts.
func NewLibrary(opts ...Option) (*Library, error) {
	l := &Library{
		logger:  log.WithComponent("lua"),
		timeout: DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.state = NewState(WithExecutionTimeout(l.timeout), WithStateLogger(l.logger))

	all := append([]script{{name: "default.lua", source: defaultScript}}, l.scripts...)
	for _, s := range all {
		if err := l.load(s); err != nil {
			l.state.Close()
			return nil, err
		}
	}
	return l, nil
}

func (l *Library) load(s script) error {
	src := s.source
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		src = string(data)
	}
	if err := l.state.DoString(src); err != nil {
		return fmt.Errorf("loading script %s: %w", s.name, err)
	}
	l.logger.Info("script loaded", slog.String("script", s.name))
	return nil
}

// Close releases the Lua state.
func (l *Library) Close() error {
	return l.state.Close()
}

// Defines reports whether the scripts define the operation op.
func (l *Library) Defines(op string) bool {
	return l.state.HasFunction(op)
}

// call runs the global function op with the target's area table followed
// by args.
func (l *Library) call(op string, target widget.Element, args ...lua.LValue) error {
	area, ok := target.(*textarea.Area)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotArea)
	}

	l.state.mu.Lock()
	tbl := newAreaTable(l.state.L, area)
	l.state.mu.Unlock()

	ret, err := l.state.Call(op, append([]lua.LValue{tbl}, args...)...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(ret) > 0 && ret[0] == lua.LFalse {
		if len(ret) > 1 && ret[1] != lua.LNil {
			return fmt.Errorf("%s: %w: %s", op, ErrActionFailed, ret[1].String())
		}
		return fmt.Errorf("%s: %w", op, ErrActionFailed)
	}
	return nil
}

// ExpandAbbreviation implements dispatcher.Library.
func (l *Library) ExpandAbbreviation(target widget.Element, syntax, profile string) error {
	return l.call(dispatcher.OpExpandAbbreviation, target, lua.LString(syntax), lua.LString(profile))
}

// ExpandAbbreviationWithTab implements dispatcher.Library.
func (l *Library) ExpandAbbreviationWithTab(target widget.Element, syntax, profile string) error {
	return l.call(dispatcher.OpExpandAbbreviationWithTab, target, lua.LString(syntax), lua.LString(profile))
}

// WrapWithAbbreviation implements dispatcher.Library.
func (l *Library) WrapWithAbbreviation(target widget.Element, abbr, syntax, profile string) error {
	return l.call(dispatcher.OpWrapWithAbbreviation, target,
		lua.LString(abbr), lua.LString(syntax), lua.LString(profile))
}

// MatchPair implements dispatcher.Library.
func (l *Library) MatchPair(target widget.Element, dir dispatcher.Direction) error {
	return l.call(dispatcher.OpMatchPair, target, lua.LString(dir.String()))
}

// NextEditPoint implements dispatcher.Library.
func (l *Library) NextEditPoint(target widget.Element) error {
	return l.call(dispatcher.OpNextEditPoint, target)
}

// PrevEditPoint implements dispatcher.Library.
func (l *Library) PrevEditPoint(target widget.Element) error {
	return l.call(dispatcher.OpPrevEditPoint, target)
}

// InsertFormattedNewline implements dispatcher.Library.
func (l *Library) InsertFormattedNewline(target widget.Element) error {
	return l.call(dispatcher.OpInsertFormattedNewline, target)
}

// SelectLine implements dispatcher.Library.
func (l *Library) SelectLine(target widget.Element) error {
	return l.call(dispatcher.OpSelectLine, target)
}

var _ dispatcher.Library = (*Library)(nil)
