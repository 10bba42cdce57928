// Package world provides the shared execution context that bound systems
// read and write.
//
// A World carries three things:
//
//   - typed resources, stored and fetched by their Go type (SetResource,
//     Resource), so hosts can hang engine state such as an ECS world or a
//     renderer off the context without this package knowing the types
//   - at most one Environment, a type-erased view of application state
//     that callbacks downcast at the call site (EnvAs); a failed downcast
//     is filtering, not an error
//   - a Commands queue of deferred mutations, applied in FIFO order by
//     ApplyDeferred after a system runs
//
// A World is not safe for concurrent use. The host's update phase owns it
// exclusively while a tick is dispatched, which is the usual single-writer
// guarantee of per-frame game loops.
package world
