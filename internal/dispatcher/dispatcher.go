package dispatcher

import (
	"log/slog"
	"sync"

	"github.com/dshills/zenarea/internal/log"
	"github.com/dshills/zenarea/internal/options"
	"github.com/dshills/zenarea/internal/widget"
)

// Wrap prompt texts.
const (
	WrapPromptTitle   = "Enter abbreviation"
	WrapPromptDefault = "div"
)

// Dispatcher routes canonical action names to the action library.
type Dispatcher struct {
	store   *options.Store
	library Library
	prompt  Prompter
	logger  *slog.Logger
	metrics *Metrics

	mu        sync.RWMutex
	postHooks []PostDispatchHook
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPrompter sets the prompt used by wrap_with_abbreviation.
// Without one, the prompt always reports cancellation.
func WithPrompter(p Prompter) Option {
	return func(d *Dispatcher) {
		if p != nil {
			d.prompt = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics enables dispatch statistics.
func WithMetrics() Option {
	return func(d *Dispatcher) {
		d.metrics = NewMetrics()
	}
}

// New creates a dispatcher reading the base configuration from store.
func New(store *options.Store, library Library, opts ...Option) (*Dispatcher, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if library == nil {
		return nil, ErrNilLibrary
	}

	d := &Dispatcher{
		store:   store,
		library: library,
		prompt:  PromptFunc(func(string, string) (string, bool) { return "", false }),
		logger:  log.WithComponent("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch runs the canonical action name against the event's target.
//
// It returns StatusPropagate without touching the library when the target is
// not a text area, and when a Tab (or Enter) triggered expansion (or pretty
// break) is not enabled for the target. Unknown names yield
// StatusUnrecognized. Everything else yields StatusSuppress.
func (d *Dispatcher) Dispatch(name string, ev Event) Result {
	result := d.dispatch(name, ev)

	if result.Err != nil {
		d.logger.Warn("action failed",
			slog.String("action", name),
			slog.String("target", widget.IDOf(ev.Target)),
			slog.String("operation", result.Operation),
			slog.Any("error", result.Err))
	} else {
		d.logger.Debug("dispatched",
			slog.String("action", name),
			slog.String("target", widget.IDOf(ev.Target)),
			slog.String("key", ev.Key.String()),
			slog.String("status", result.Status.String()),
			slog.String("operation", result.Operation))
	}

	if d.metrics != nil {
		d.metrics.Record(result)
	}
	d.runPostHooks(ev, result)

	return result
}

func (d *Dispatcher) dispatch(name string, ev Event) Result {
	if !widget.IsTextArea(ev.Target) {
		return Propagated(name)
	}
	target := ev.Target

	opts := d.store.Resolve(target.ClassName())
	syntax := opts.String(options.Syntax)
	profile := opts.String(options.Profile)

	switch name {
	case ActionExpandAbbreviation:
		if ev.Key.IsTab() {
			if !opts.Bool(options.UseTab) {
				// Tab keeps its native meaning unless the area opted in
				return Propagated(name)
			}
			return done(name, OpExpandAbbreviationWithTab,
				d.library.ExpandAbbreviationWithTab(target, syntax, profile))
		}
		return done(name, OpExpandAbbreviation,
			d.library.ExpandAbbreviation(target, syntax, profile))

	case ActionMatchPairInward, ActionBalanceTagInward:
		return done(name, OpMatchPair, d.library.MatchPair(target, DirIn))

	case ActionMatchPairOutward, ActionBalanceTagOutward:
		return done(name, OpMatchPair, d.library.MatchPair(target, DirOut))

	case ActionWrapWithAbbreviation:
		abbr, ok := d.prompt.Prompt(WrapPromptTitle, WrapPromptDefault)
		if !ok || abbr == "" {
			return Suppressed(name, "")
		}
		return done(name, OpWrapWithAbbreviation,
			d.library.WrapWithAbbreviation(target, abbr, syntax, profile))

	case ActionNextEditPoint:
		return done(name, OpNextEditPoint, d.library.NextEditPoint(target))

	case ActionPreviuosEditPoint, ActionPrevEditPoint, ActionPreviousEditPoint:
		return done(name, OpPrevEditPoint, d.library.PrevEditPoint(target))

	case ActionPrettyBreak, ActionFormatLineBreak:
		if ev.Key.IsEnter() && !opts.Bool(options.PrettyBreak) {
			return Propagated(name)
		}
		return done(name, OpInsertFormattedNewline, d.library.InsertFormattedNewline(target))

	case ActionSelectLine:
		return done(name, OpSelectLine, d.library.SelectLine(target))

	default:
		return Unrecognized(name)
	}
}

func done(action, op string, err error) Result {
	r := Suppressed(action, op)
	r.Err = err
	return r
}

// RegisterPostHook registers a hook run after every dispatch.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

func (d *Dispatcher) runPostHooks(ev Event, result Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(ev, result)
	}
}

// Store returns the options store.
func (d *Dispatcher) Store() *options.Store {
	return d.store
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
