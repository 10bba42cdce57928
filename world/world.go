package world

import (
	"fmt"
	"reflect"
)

// World is the shared execution context systems run against: typed
// resources, an optional Environment, and the deferred command queue.
type World struct {
	resources map[reflect.Type]any
	env       Environment
	commands  Commands
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		resources: make(map[reflect.Type]any),
	}
}

// Commands returns the world's deferred mutation queue.
func (w *World) Commands() *Commands {
	return &w.commands
}

// ApplyDeferred runs every queued mutation against the world in FIFO
// order, including mutations queued by the mutations themselves. On the
// first failure the remaining queue is dropped, so the world is left with
// nothing pending either way.
func (w *World) ApplyDeferred() error {
	for w.commands.Len() > 0 {
		for _, fn := range w.commands.drain() {
			if err := fn(w); err != nil {
				w.commands.clear()
				return fmt.Errorf("world: apply deferred: %w", err)
			}
		}
	}
	return nil
}

// DiscardDeferred drops all pending mutations without running them and
// returns how many were dropped.
func (w *World) DiscardDeferred() int {
	n := w.commands.Len()
	w.commands.clear()
	return n
}

// SetEnv attaches the environment callbacks will downcast.
func (w *World) SetEnv(env Environment) {
	w.env = env
}

// Env returns the attached environment, or nil.
func (w *World) Env() Environment {
	return w.env
}

func resourceKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetResource stores value under its type T, replacing any previous value
// of that type.
func SetResource[T any](w *World, value T) {
	w.resources[resourceKey[T]()] = value
}

// Resource fetches the resource of type T.
func Resource[T any](w *World) (T, bool) {
	v, ok := w.resources[resourceKey[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveResource deletes the resource of type T, reporting whether one
// was present.
func RemoveResource[T any](w *World) bool {
	k := resourceKey[T]()
	if _, ok := w.resources[k]; !ok {
		return false
	}
	delete(w.resources, k)
	return true
}
