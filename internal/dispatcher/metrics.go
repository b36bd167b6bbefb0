package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	totalDispatches uint64
	totalErrors     uint64
}

// ActionMetrics holds counters for one canonical action name.
type ActionMetrics struct {
	Name           string
	DispatchCount  uint64
	PropagateCount uint64
	ErrorCount     uint64
	LastStatus     Status
	LastDispatch   time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// Record records one dispatch result.
func (m *Metrics) Record(result Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	if result.Err != nil {
		m.totalErrors++
	}

	am := m.actions[result.Action]
	if am == nil {
		am = &ActionMetrics{Name: result.Action}
		m.actions[result.Action] = am
	}
	am.DispatchCount++
	if result.Propagate() {
		am.PropagateCount++
	}
	if result.Err != nil {
		am.ErrorCount++
	}
	am.LastStatus = result.Status
	am.LastDispatch = time.Now()
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of dispatches whose operation failed.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// Action returns a copy of the counters for name, or nil.
func (m *Metrics) Action(name string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	am := m.actions[name]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// Snapshot returns copies of all action counters sorted by name.
func (m *Metrics) Snapshot() []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
}
