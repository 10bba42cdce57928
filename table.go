package keybind

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Table is the ordered binding collection the runner dispatches against.
// Insertion order is significant: when several bindings share a key, they
// execute in the order they were appended.
//
// The table is safe for use from multiple goroutines, so hosts may mutate
// it outside the tick (a reload watcher, a settings screen). Mutations
// made while a tick is dispatching take effect from the next tick.
type Table[K comparable] struct {
	mu       sync.RWMutex
	bindings []*Binding[K]
}

// NewTable creates a table pre-populated with the given bindings, all
// uninitialized. NewTable panics if a binding has a nil System; use Push
// to handle that as an error instead.
func NewTable[K comparable](initial ...Binding[K]) *Table[K] {
	t := &Table[K]{}
	for _, b := range initial {
		if err := t.Push(b); err != nil {
			panic(err.Error())
		}
	}
	return t
}

// Push appends a binding. The binding is not initialized here; the runner
// initializes it on the first tick its key matches.
func (t *Table[K]) Push(b Binding[K]) error {
	if err := prepare(&b); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings = append(t.bindings, &b)
	return nil
}

// Remove deletes every binding whose label equals label, preserving the
// relative order of the survivors. It returns the number removed, 0 when
// nothing matched.
func (t *Table[K]) Remove(label string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.bindings[:0]
	for _, b := range t.bindings {
		if b.Label != label {
			kept = append(kept, b)
		}
	}
	removed := len(t.bindings) - len(kept)
	for i := len(kept); i < len(t.bindings); i++ {
		t.bindings[i] = nil
	}
	t.bindings = kept
	return removed
}

// Replace swaps the whole table for the given bindings in one step. All
// bindings are validated first; on error the table is left unchanged.
// Reload paths use this so a half-built table is never observable.
func (t *Table[K]) Replace(bindings ...Binding[K]) error {
	next := make([]*Binding[K], 0, len(bindings))
	for _, b := range bindings {
		if err := prepare(&b); err != nil {
			return err
		}
		next = append(next, &b)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings = next
	return nil
}

// Len returns the number of bindings.
func (t *Table[K]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}

// Labels returns every binding label in table order, duplicates included.
func (t *Table[K]) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	labels := make([]string, len(t.bindings))
	for i, b := range t.bindings {
		labels[i] = b.Label
	}
	return labels
}

// Bindings returns a copy of the table for inspection, in table order.
func (t *Table[K]) Bindings() []Binding[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding[K], len(t.bindings))
	for i, b := range t.bindings {
		out[i] = *b
	}
	return out
}

// match snapshots the bindings whose key is in the pressed set, in table
// order. The runner executes the snapshot unlocked so callbacks may
// mutate the table.
func (t *Table[K]) match(pressed []K) []*Binding[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var matched []*Binding[K]
	for _, b := range t.bindings {
		if slices.Contains(pressed, b.Key) {
			matched = append(matched, b)
		}
	}
	return matched
}

// prepare validates a binding and fills defaults before it enters a table.
func prepare[K comparable](b *Binding[K]) error {
	if b.System == nil {
		return ErrNilSystem
	}
	if b.Label == "" {
		b.Label = uuid.NewString()
	}
	b.initialized = false
	return nil
}
