// Package recognizer matches keystrokes against registered patterns.
package recognizer

import (
	"sync"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/shortcut"
	"github.com/dshills/zenarea/internal/widget"
)

// Recognizer maps key patterns to handlers. It is safe for concurrent use.
type Recognizer struct {
	mu       sync.RWMutex
	handlers map[key.Pattern]shortcut.Handler
}

// New creates an empty recognizer.
func New() *Recognizer {
	return &Recognizer{handlers: make(map[key.Pattern]shortcut.Handler)}
}

// Register installs h for p, replacing any previous handler.
func (r *Recognizer) Register(p key.Pattern, h shortcut.Handler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.handlers[p] = h
	r.mu.Unlock()
}

// Unregister removes the handler for p.
func (r *Recognizer) Unregister(p key.Pattern) {
	r.mu.Lock()
	delete(r.handlers, p)
	r.mu.Unlock()
}

// Registered reports whether p has a handler.
func (r *Recognizer) Registered(p key.Pattern) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[p]
	return ok
}

// Len returns the number of registered patterns.
func (r *Recognizer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Handle runs the handler matching ev, if any. The second result is false
// when no pattern matched; the host then applies the key's native behaviour.
// The handler runs without the lock held so it may rebind shortcuts.
func (r *Recognizer) Handle(ev key.Event, target widget.Element) (dispatcher.Result, bool) {
	r.mu.RLock()
	h, ok := r.handlers[ev.Pattern()]
	r.mu.RUnlock()
	if !ok {
		return dispatcher.Result{}, false
	}
	return h(dispatcher.Event{Target: target, Key: ev}), true
}
