package luabind

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Option configures an Engine.
type Option func(*Engine)

// Sandboxed restricts the Lua state to the base, table, string, and
// math libraries. Scripts get no io, os, debug, or package access.
func Sandboxed() Option {
	return func(e *Engine) {
		e.sandboxed = true
	}
}

// Engine wraps a Lua state that hosts binding callbacks.
//
// The state is not goroutine-safe; the engine serializes access with a
// mutex.
type Engine struct {
	mu        sync.Mutex
	L         *lua.LState
	sandboxed bool
	closed    bool
}

// NewEngine creates a Lua engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.sandboxed {
		L := lua.NewState(lua.Options{SkipOpenLibs: true})
		openSafeLibraries(L)
		e.L = L
	} else {
		e.L = lua.NewState()
	}

	return e
}

// openSafeLibraries opens only Lua standard libraries with no process
// or file system reach.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// LoadFile executes a Lua file in the engine.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	return e.withRecovery(func() error {
		return e.L.DoFile(path)
	})
}

// LoadString executes Lua source in the engine.
func (e *Engine) LoadString(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	return e.withRecovery(func() error {
		return e.L.DoString(code)
	})
}

// RegisterModule exposes Go functions to scripts as a global table,
// callable as name.fn(...).
func (e *Engine) RegisterModule(name string, fns map[string]lua.LGFunction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	mod := e.L.NewTable()
	for fname, fn := range fns {
		e.L.SetField(mod, fname, e.L.NewFunction(fn))
	}
	e.L.SetGlobal(name, mod)
}

// RegisterFunc exposes a single Go function as a global.
func (e *Engine) RegisterFunc(name string, fn lua.LGFunction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.L.SetGlobal(name, e.L.NewFunction(fn))
}

// Global returns a global variable's value, lua.LNil after Close.
func (e *Engine) Global(name string) lua.LValue {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return lua.LNil
	}

	return e.L.GetGlobal(name)
}

// SetGlobal sets a global variable.
func (e *Engine) SetGlobal(name string, value lua.LValue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.L.SetGlobal(name, value)
}

// Close releases the Lua state. Systems built from the engine fail
// with ErrEngineClosed afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// call invokes the global Lua function fn with no arguments, discarding
// returns.
func (e *Engine) call(fn string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	fnVal := e.L.GetGlobal(fn)
	if fnVal == lua.LNil {
		return fmt.Errorf("%w: %q", ErrFunctionNotFound, fn)
	}
	if fnVal.Type() != lua.LTFunction {
		return fmt.Errorf("%w: %q is a %s", ErrNotFunction, fn, fnVal.Type())
	}

	return e.withRecovery(func() error {
		return e.L.CallByParam(lua.P{Fn: fnVal, NRet: 0, Protect: true})
	})
}

// hasFunction reports whether a global is defined and callable.
func (e *Engine) hasFunction(fn string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false
	}

	return e.L.GetGlobal(fn).Type() == lua.LTFunction
}

// withRecovery converts gopher-lua panics into errors. Callers hold
// the mutex.
func (e *Engine) withRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("luabind: lua panic: %v", r)
		}
	}()
	return fn()
}
