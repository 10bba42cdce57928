package luabind

import (
	"github.com/dshills/keybind"
	"github.com/dshills/keybind/world"
)

// initSuffix names the optional one-time setup function for a system.
// A system "jump" initializes with jump_init when the script defines it.
const initSuffix = "_init"

// System returns a binding callback backed by the Lua global function
// name. Run invokes name(); Init invokes name_init() when the script
// defines one, and is a no-op otherwise. The runner gates Init to the
// first matched tick.
//
// Script functions mutate game state through modules the host exported
// with RegisterModule. Deferred world commands queued during the run
// phase are applied by ApplyDeferred as usual.
func (e *Engine) System(name string) keybind.System {
	return &luaSystem{engine: e, name: name}
}

type luaSystem struct {
	engine *Engine
	name   string
}

func (s *luaSystem) Init(w *world.World) error {
	initFn := s.name + initSuffix
	if !s.engine.hasFunction(initFn) {
		return nil
	}
	return s.engine.call(initFn)
}

func (s *luaSystem) Run(w *world.World) error {
	return s.engine.call(s.name)
}

func (s *luaSystem) ApplyDeferred(w *world.World) error {
	return w.ApplyDeferred()
}
