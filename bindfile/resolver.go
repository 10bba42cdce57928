package bindfile

import (
	"errors"
	"fmt"

	"github.com/dshills/keybind"
)

// ErrUnknownAction is returned when a Resolver has no system for an
// action name.
var ErrUnknownAction = errors.New("bindfile: unknown action")

// Resolver turns an action name and its arguments into a runnable
// system.
type Resolver interface {
	Resolve(action string, args map[string]any) (keybind.System, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(action string, args map[string]any) (keybind.System, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(action string, args map[string]any) (keybind.System, error) {
	return f(action, args)
}

// MapResolver resolves actions from a static name-to-constructor map.
// The constructor receives the binding's arguments.
type MapResolver map[string]func(args map[string]any) keybind.System

// Resolve looks up the action constructor. Unknown actions return
// ErrUnknownAction.
func (m MapResolver) Resolve(action string, args map[string]any) (keybind.System, error) {
	ctor, ok := m[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return ctor(args), nil
}
