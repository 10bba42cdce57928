package keybind

import (
	"errors"
	"fmt"

	"github.com/dshills/keybind/world"
)

// Config controls runner behavior.
type Config struct {
	// ContinueOnError switches the tick to best-effort dispatch: every
	// failure is collected, the remaining matches still run, and Tick
	// returns the joined failures. The default is fail-fast, where the
	// first failure ends the tick's dispatch.
	ContinueOnError bool

	// Logger receives one warning per failing tick. Nil disables the
	// boundary log.
	Logger *Logger

	// Metrics, when set, counts ticks, dispatches, inits and failures.
	Metrics *Metrics
}

// DefaultConfig returns the default runner configuration: fail-fast, the
// package's default logger, no metrics.
func DefaultConfig() Config {
	return Config{
		Logger: NewLogger(DefaultLoggerConfig()),
	}
}

// Option adjusts a runner's configuration at construction.
type Option func(*Config)

// WithContinueOnError selects best-effort dispatch for failing ticks.
func WithContinueOnError(on bool) Option {
	return func(c *Config) { c.ContinueOnError = on }
}

// WithLogger sets the logger for the runner boundary. Pass NullLogger to
// silence it.
func WithLogger(l *Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.Metrics = m }
}

// Runner dispatches the keys pressed in a tick against one table. The
// host's scheduler calls Tick once per update; the runner itself never
// polls input.
type Runner[K comparable] struct {
	table *Table[K]
	cfg   Config
}

// NewRunner creates a runner bound to table.
func NewRunner[K comparable](table *Table[K], opts ...Option) *Runner[K] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner[K]{table: table, cfg: cfg}
}

// Tick dispatches one tick. pressed holds the keys that transitioned to
// pressed since the previous tick; an empty set is a no-op. For every
// binding whose key is in the set, in table order, the runner lazily
// initializes the system, runs it, and applies its deferred mutations
// before the next binding executes.
//
// The returned error is the tick's failure per the configured policy.
// The table keeps whatever state existed at the failure point, and the
// failing binding will be attempted again on the next tick its key is
// pressed.
func (r *Runner[K]) Tick(w *world.World, pressed []K) error {
	if r.table == nil {
		return ErrNilTable
	}
	if w == nil {
		return ErrNilWorld
	}

	r.cfg.Metrics.recordTick()
	if len(pressed) == 0 {
		return nil
	}

	var errs []error
	for _, b := range r.table.match(pressed) {
		err := r.dispatch(w, b)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if !r.cfg.ContinueOnError {
			break
		}
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		r.logFailure(errs[0])
		return errs[0]
	default:
		err := errors.Join(errs...)
		r.logFailure(err)
		return err
	}
}

// dispatch drives one binding through its phases. A phase failure skips
// the binding's remaining phases and discards pending commands so the
// next binding starts from a clean world.
func (r *Runner[K]) dispatch(w *world.World, b *Binding[K]) error {
	if !b.initialized {
		if err := call(b.System.Init, w); err != nil {
			return r.fail(w, b, PhaseInit, err)
		}
		b.initialized = true
		r.cfg.Metrics.recordInit()
	}

	r.cfg.Metrics.recordDispatch()
	if err := call(b.System.Run, w); err != nil {
		return r.fail(w, b, PhaseRun, err)
	}

	if err := call(b.System.ApplyDeferred, w); err != nil {
		return r.fail(w, b, PhaseApply, err)
	}
	return nil
}

func (r *Runner[K]) fail(w *world.World, b *Binding[K], phase Phase, err error) error {
	w.DiscardDeferred()
	r.cfg.Metrics.recordFailure()
	if errors.Is(err, ErrCallbackPanic) {
		r.cfg.Metrics.recordPanic()
	}
	return &DispatchError{Label: b.Label, Key: b.Key, Phase: phase, Err: err}
}

func (r *Runner[K]) logFailure(err error) {
	if r.cfg.Logger != nil {
		r.cfg.Logger.Warn("tick dispatch failed: %v", err)
	}
}

// call invokes one phase, converting a panic in user code into an error
// so a misbehaving callback cannot take down the host's update loop.
func call(phase func(*world.World) error, w *world.World) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, rec)
		}
	}()
	return phase(w)
}
