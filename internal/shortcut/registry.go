// Package shortcut binds keystroke patterns to action names.
//
// The registry is the only component that knows action names. It hands the
// recognizer an opaque Handler per pattern; the handler forwards the
// canonical action name and the keystroke to the dispatcher and returns its
// result unchanged.
package shortcut

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/input/keymap"
)

// Registry errors.
var (
	ErrNilRecognizer = errors.New("shortcut: nil recognizer")
	ErrNilDispatcher = errors.New("shortcut: nil dispatcher")
)

// Handler is invoked by the recognizer when its pattern is pressed.
type Handler func(ev dispatcher.Event) dispatcher.Result

// Recognizer detects key combinations and invokes the registered handler.
type Recognizer interface {
	Register(p key.Pattern, h Handler)
	Unregister(p key.Pattern)
}

// Dispatcher runs a canonical action name.
type Dispatcher interface {
	Dispatch(name string, ev dispatcher.Event) dispatcher.Result
}

// Registry tracks bound patterns and their canonical action names.
type Registry struct {
	mu         sync.RWMutex
	recognizer Recognizer
	dispatcher Dispatcher
	bindings   map[key.Pattern]string
}

// NewRegistry creates a registry registering handlers with rec that forward
// to d.
func NewRegistry(rec Recognizer, d Dispatcher) (*Registry, error) {
	if rec == nil {
		return nil, ErrNilRecognizer
	}
	if d == nil {
		return nil, ErrNilDispatcher
	}
	return &Registry{
		recognizer: rec,
		dispatcher: d,
		bindings:   make(map[key.Pattern]string),
	}, nil
}

// Bind associates pattern with the action named by label. The label is
// normalized once here; a later Bind for the same pattern replaces this one.
func (r *Registry) Bind(pattern, label string) error {
	p, err := key.ParsePattern(pattern)
	if err != nil {
		return fmt.Errorf("binding %q: %w", pattern, err)
	}
	name := dispatcher.Normalize(label)

	r.mu.Lock()
	r.bindings[p] = name
	r.mu.Unlock()

	r.recognizer.Register(p, r.handler(name))
	return nil
}

func (r *Registry) handler(name string) Handler {
	return func(ev dispatcher.Event) dispatcher.Result {
		return r.dispatcher.Dispatch(name, ev)
	}
}

// Unbind removes the binding for pattern. Unknown or unparseable patterns are
// ignored.
func (r *Registry) Unbind(pattern string) {
	p, err := key.ParsePattern(pattern)
	if err != nil {
		return
	}

	r.mu.Lock()
	_, ok := r.bindings[p]
	delete(r.bindings, p)
	r.mu.Unlock()

	if ok {
		r.recognizer.Unregister(p)
	}
}

// Lookup returns the canonical action bound to pattern.
func (r *Registry) Lookup(pattern string) (string, bool) {
	p, err := key.ParsePattern(pattern)
	if err != nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.bindings[p]
	return name, ok
}

// Bindings returns the current bindings sorted by pattern notation.
func (r *Registry) Bindings() []keymap.Binding {
	r.mu.RLock()
	out := make([]keymap.Binding, 0, len(r.bindings))
	for p, name := range r.bindings {
		out = append(out, keymap.NewBinding(p.String(), name))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Keys < out[j].Keys
	})
	return out
}

// Keymap exports the current bindings as a keymap named name.
func (r *Registry) Keymap(name string) *keymap.Keymap {
	km := keymap.NewKeymap(name)
	km.Bindings = append(km.Bindings, r.Bindings()...)
	return km
}

// InstallDefaults binds the default shortcut table.
func (r *Registry) InstallDefaults() error {
	return r.Apply(keymap.Default())
}

// Apply binds every entry of km in order. Entries with an empty action
// unbind their pattern. It stops at the first invalid pattern.
func (r *Registry) Apply(km *keymap.Keymap) error {
	for _, b := range km.Bindings {
		if b.IsUnbind() {
			r.Unbind(b.Keys)
			continue
		}
		if err := r.Bind(b.Keys, b.Action); err != nil {
			return fmt.Errorf("applying keymap %q: %w", km.Name, err)
		}
	}
	return nil
}
