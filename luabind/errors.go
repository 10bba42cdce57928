package luabind

import "errors"

// Errors for engine operations.
var (
	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("luabind: engine is closed")

	// ErrFunctionNotFound is returned when a system's Lua function is
	// not defined.
	ErrFunctionNotFound = errors.New("luabind: function not found")

	// ErrNotFunction is returned when a global exists but is not
	// callable.
	ErrNotFunction = errors.New("luabind: global is not a function")
)
