// Package keybind associates keyboard keys with callbacks ("systems")
// that a host engine invokes once per tick when the key is newly pressed.
//
// Two pieces cooperate:
//
//   - Table: an ordered collection of bindings (label, key, system).
//     Hosts append with Push and delete with Remove; insertion order is
//     execution order when several bindings share a key.
//   - Runner: the per-tick dispatch loop. Tick takes the world and the
//     keys just pressed this tick, matches them against the table, lazily
//     initializes each bound system once, runs it, and applies its
//     deferred mutations before the next match executes.
//
// The package does not poll input itself. Input backends hand the runner
// a pressed set per tick; the tcellkeys, ebitenkeys and teakeys packages
// adapt common backends to the key.Stroke identity, and Table is generic
// over any comparable key type for hosts that bind raw backend keys.
//
// # Systems
//
// A System is the three-phase executable unit: Init once per binding
// lifetime, Run each matching tick, ApplyDeferred straight after Run.
// SystemFunc adapts a plain function; Func adapts a closure that works
// through the command queue and a type-erased environment.
//
// # Errors
//
// The only runtime failure is a system phase failing. The default policy
// is fail-fast: the first failure ends the tick's dispatch and Tick
// returns a DispatchError, logged once at the runner boundary. With
// WithContinueOnError the runner keeps going and returns the joined
// failures. Failing bindings are never disabled; the next matching tick
// tries them again.
package keybind
