package keybind

import (
	"github.com/dshills/keybind/world"
)

// Binding associates one key with one system. The key type K is anything
// comparable: key.Stroke, a backend's own key enum, or a plain string.
type Binding[K comparable] struct {
	// Label tags the binding for later removal. Labels need not be
	// unique; Remove deletes every match. An empty label is replaced
	// with a generated UUID when the binding enters a table, so every
	// binding stays individually removable.
	Label string

	// Key triggers the binding, compared by equality against the keys
	// pressed in a tick.
	Key K

	// System is the executable unit. Each binding owns its system
	// exclusively.
	System System

	// initialized flips to true after the first successful Init. Only
	// the runner touches it.
	initialized bool
}

// NewBinding builds a labeled binding.
func NewBinding[K comparable](label string, key K, sys System) Binding[K] {
	return Binding[K]{Label: label, Key: key, System: sys}
}

// Bind builds an unlabeled binding.
func Bind[K comparable](key K, sys System) Binding[K] {
	return Binding[K]{Key: key, System: sys}
}

// BindFunc builds an unlabeled binding around a plain function.
func BindFunc[K comparable](key K, fn func(*world.World) error) Binding[K] {
	return Binding[K]{Key: key, System: SystemFunc(fn)}
}

// Initialized reports whether the runner has initialized this binding's
// system.
func (b *Binding[K]) Initialized() bool {
	return b.initialized
}
