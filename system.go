package keybind

import (
	"github.com/dshills/keybind/world"
)

// System is the executable unit a binding triggers. The runner drives the
// three phases in order; each may fail, and a failure in any of them is
// the binding's failure for that tick.
type System interface {
	// Init prepares the system against the world. The runner calls it at
	// most once per binding lifetime, on the first tick the binding
	// matches, before the first Run. A failed Init is retried on the next
	// matching tick.
	Init(w *world.World) error

	// Run executes the system. It may read and write the world and may
	// queue deferred mutations on the world's command queue.
	Run(w *world.World) error

	// ApplyDeferred applies whatever Run staged. The runner calls it
	// immediately after a successful Run, before the next matching
	// binding observes the world.
	ApplyDeferred(w *world.World) error
}

// SystemFunc adapts a plain function to System: no initialization, and
// ApplyDeferred drains the world's command queue.
type SystemFunc func(w *world.World) error

func (f SystemFunc) Init(*world.World) error { return nil }

func (f SystemFunc) Run(w *world.World) error { return f(w) }

func (f SystemFunc) ApplyDeferred(w *world.World) error { return w.ApplyDeferred() }

// Func adapts the closure-callback shape: the callback stages mutations
// through the command queue and downcasts the world's environment to the
// concrete state it knows (see world.EnvAs).
func Func(fn func(cmds *world.Commands, env world.Environment) error) System {
	return SystemFunc(func(w *world.World) error {
		return fn(w.Commands(), w.Env())
	})
}

type phasedSystem struct {
	init  func(*world.World) error
	run   func(*world.World) error
	apply func(*world.World) error
}

// NewSystem builds a System from separate phase functions. A nil init or
// run is a no-op; a nil apply drains the world's command queue.
func NewSystem(init, run, apply func(*world.World) error) System {
	return &phasedSystem{init: init, run: run, apply: apply}
}

func (s *phasedSystem) Init(w *world.World) error {
	if s.init == nil {
		return nil
	}
	return s.init(w)
}

func (s *phasedSystem) Run(w *world.World) error {
	if s.run == nil {
		return nil
	}
	return s.run(w)
}

func (s *phasedSystem) ApplyDeferred(w *world.World) error {
	if s.apply == nil {
		return w.ApplyDeferred()
	}
	return s.apply(w)
}
