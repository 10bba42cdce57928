package keybind

import (
	"sync/atomic"
	"time"
)

// Metrics counts runner activity. All methods are safe for concurrent use
// and safe on a nil receiver, so a runner without a metrics sink pays
// nothing.
type Metrics struct {
	ticks      atomic.Uint64
	dispatches atomic.Uint64
	inits      atomic.Uint64
	failures   atomic.Uint64
	panics     atomic.Uint64
	startTime  time.Time
}

// NewMetrics creates a metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) recordTick() {
	if m == nil {
		return
	}
	m.ticks.Add(1)
}

func (m *Metrics) recordDispatch() {
	if m == nil {
		return
	}
	m.dispatches.Add(1)
}

func (m *Metrics) recordInit() {
	if m == nil {
		return
	}
	m.inits.Add(1)
}

func (m *Metrics) recordFailure() {
	if m == nil {
		return
	}
	m.failures.Add(1)
}

func (m *Metrics) recordPanic() {
	if m == nil {
		return
	}
	m.panics.Add(1)
}

// Ticks returns the number of Tick calls, including empty ones.
func (m *Metrics) Ticks() uint64 {
	if m == nil {
		return 0
	}
	return m.ticks.Load()
}

// Dispatches returns the number of binding executions attempted.
func (m *Metrics) Dispatches() uint64 {
	if m == nil {
		return 0
	}
	return m.dispatches.Load()
}

// Inits returns the number of successful lazy initializations.
func (m *Metrics) Inits() uint64 {
	if m == nil {
		return 0
	}
	return m.inits.Load()
}

// Failures returns the number of failed binding executions.
func (m *Metrics) Failures() uint64 {
	if m == nil {
		return 0
	}
	return m.failures.Load()
}

// Panics returns the number of panics recovered from callbacks.
func (m *Metrics) Panics() uint64 {
	if m == nil {
		return 0
	}
	return m.panics.Load()
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Ticks      uint64
	Dispatches uint64
	Inits      uint64
	Failures   uint64
	Panics     uint64
	Uptime     time.Duration
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Ticks:      m.ticks.Load(),
		Dispatches: m.dispatches.Load(),
		Inits:      m.inits.Load(),
		Failures:   m.failures.Load(),
		Panics:     m.panics.Load(),
		Uptime:     time.Since(m.startTime),
	}
}
