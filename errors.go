package keybind

import (
	"errors"
	"fmt"
)

// Construction and dispatch errors.
var (
	// ErrNilSystem indicates a binding was pushed without a system.
	ErrNilSystem = errors.New("keybind: binding has no system")

	// ErrNilTable indicates the runner was built without a table.
	ErrNilTable = errors.New("keybind: table is nil")

	// ErrNilWorld indicates Tick was called without a world.
	ErrNilWorld = errors.New("keybind: world is nil")

	// ErrCallbackPanic wraps a panic recovered from a system phase.
	ErrCallbackPanic = errors.New("keybind: callback panicked")
)

// Phase identifies which stage of a binding's execution failed.
type Phase string

const (
	PhaseInit  Phase = "init"
	PhaseRun   Phase = "run"
	PhaseApply Phase = "apply-deferred"
)

// DispatchError reports one binding's execution failure. Key is the
// binding's key as-is; it is typed any so the error stays usable across
// every table key type.
type DispatchError struct {
	Label string
	Key   any
	Phase Phase
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("keybind: binding %q (key %v) %s: %v", e.Label, e.Key, e.Phase, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
