// Package luabind exposes binding callbacks written in Lua.
//
// An Engine wraps a gopher-lua state. Hosts load scripts with LoadFile
// or LoadString, export Go functions to them with RegisterModule, and
// turn script functions into runnable systems with System.
//
// A system named "jump" runs the Lua global function jump() each time
// its binding fires. If the script also defines jump_init(), the runner
// calls it once before the first run. Script errors and Lua panics come
// back as ordinary Go errors.
//
// gopher-lua states are not goroutine-safe. The Engine serializes all
// access with a mutex, so one engine may back bindings in one runner;
// use separate engines for separate runners if ticks ever overlap.
package luabind
