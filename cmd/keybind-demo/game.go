package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/bindfile"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/luabind"
	"github.com/dshills/keybind/world"
)

// GameState is the environment binding callbacks downcast to.
type GameState struct {
	Paused bool
	Score  int
}

// Entity components.
type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }
type Glyph struct{ Ch rune }

var (
	positionType = donburi.NewComponentType[Position]()
	velocityType = donburi.NewComponentType[Velocity]()
	glyphType    = donburi.NewComponentType[Glyph]()
)

var glyphs = []rune("o*+x%#@")

// Game owns the simulation: the entity world, the environment state,
// and the systems the binding table dispatches to.
type Game struct {
	state *GameState
	ecs   donburi.World
	query *donburi.Query

	// Playfield size, updated from the screen each frame.
	width  int
	height int

	quit atomic.Bool
}

func newGame() *Game {
	return &Game{
		state:  &GameState{},
		ecs:    donburi.NewWorld(),
		query:  donburi.NewQuery(filter.Contains(positionType, velocityType, glyphType)),
		width:  80,
		height: 22,
	}
}

func (g *Game) requestQuit() {
	g.quit.Store(true)
}

func (g *Game) quitRequested() bool {
	return g.quit.Load()
}

// step advances every entity one fixed timestep, bouncing off the
// playfield edges.
func (g *Game) step() {
	g.query.Each(g.ecs, func(entry *donburi.Entry) {
		pos := positionType.Get(entry)
		vel := velocityType.Get(entry)

		pos.X += vel.DX
		pos.Y += vel.DY

		if pos.X < 0 {
			pos.X, vel.DX = 0, -vel.DX
		} else if max := float64(g.width - 1); pos.X > max {
			pos.X, vel.DX = max, -vel.DX
		}
		if pos.Y < 0 {
			pos.Y, vel.DY = 0, -vel.DY
		} else if max := float64(g.height - 1); pos.Y > max {
			pos.Y, vel.DY = max, -vel.DY
		}
	})
}

func (g *Game) spawnInto(ecs donburi.World) {
	entry := ecs.Entry(ecs.Create(positionType, velocityType, glyphType))
	positionType.SetValue(entry, Position{
		X: rand.Float64() * float64(g.width),
		Y: rand.Float64() * float64(g.height),
	})
	velocityType.SetValue(entry, Velocity{
		DX: rand.Float64()*2 - 1,
		DY: rand.Float64()*2 - 1,
	})
	glyphType.SetValue(entry, Glyph{Ch: glyphs[rand.IntN(len(glyphs))]})
}

func (g *Game) clearInto(ecs donburi.World) {
	var entities []donburi.Entity
	g.query.Each(ecs, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, e := range entities {
		ecs.Remove(e)
	}
}

// Systems. Quit and score act immediately; pause, spawn, and clear
// stage their mutation on the command queue and let the runner apply
// it after the run phase.

func (g *Game) quitSystem() keybind.System {
	return keybind.SystemFunc(func(*world.World) error {
		g.requestQuit()
		return nil
	})
}

func (g *Game) pauseSystem() keybind.System {
	return keybind.Func(func(cmds *world.Commands, env world.Environment) error {
		cmds.Queue(func(w *world.World) error {
			if gs, ok := world.EnvAsMut[*GameState](w.Env()); ok {
				gs.Paused = !gs.Paused
			}
			return nil
		})
		return nil
	})
}

func (g *Game) scoreSystem(points int) keybind.System {
	return keybind.Func(func(cmds *world.Commands, env world.Environment) error {
		gs, ok := world.EnvAsMut[*GameState](env)
		if !ok {
			return nil
		}
		gs.Score += points
		return nil
	})
}

func (g *Game) spawnSystem() keybind.System {
	return keybind.SystemFunc(func(w *world.World) error {
		w.Commands().Queue(func(cw *world.World) error {
			if ecs, ok := world.Resource[donburi.World](cw); ok {
				g.spawnInto(ecs)
			}
			return nil
		})
		return nil
	})
}

func (g *Game) clearSystem() keybind.System {
	return keybind.SystemFunc(func(w *world.World) error {
		w.Commands().Queue(func(cw *world.World) error {
			if ecs, ok := world.Resource[donburi.World](cw); ok {
				g.clearInto(ecs)
			}
			return nil
		})
		return nil
	})
}

// resolver maps binding file actions to systems. Actions with a "lua."
// prefix resolve to script functions when a script is loaded.
func (g *Game) resolver(engine *luabind.Engine) bindfile.Resolver {
	actions := bindfile.MapResolver{
		"game.quit":  func(map[string]any) keybind.System { return g.quitSystem() },
		"game.pause": func(map[string]any) keybind.System { return g.pauseSystem() },
		"game.spawn": func(map[string]any) keybind.System { return g.spawnSystem() },
		"game.clear": func(map[string]any) keybind.System { return g.clearSystem() },
		"game.score": func(args map[string]any) keybind.System {
			return g.scoreSystem(intArg(args, "points", 1))
		},
	}

	return bindfile.ResolverFunc(func(action string, args map[string]any) (keybind.System, error) {
		if name, ok := strings.CutPrefix(action, "lua."); ok {
			if engine == nil {
				return nil, fmt.Errorf("action %q needs -script", action)
			}
			return engine.System(name), nil
		}
		return actions.Resolve(action, args)
	})
}

// defaultBindings builds the built-in table through the same resolver
// binding files use.
func (g *Game) defaultBindings(r bindfile.Resolver) []keybind.Binding[key.Stroke] {
	defs := []struct {
		label  string
		spec   string
		action string
	}{
		{"quit", "q", "game.quit"},
		{"quit", "Escape", "game.quit"},
		{"pause", "Space", "game.pause"},
		{"spawn", "s", "game.spawn"},
		{"score", "a", "game.score"},
		{"clear", "c", "game.clear"},
	}

	bindings := make([]keybind.Binding[key.Stroke], 0, len(defs))
	for _, d := range defs {
		sys, err := r.Resolve(d.action, nil)
		if err != nil {
			panic(fmt.Sprintf("default binding %s: %v", d.label, err))
		}
		bindings = append(bindings, keybind.NewBinding(d.label, key.MustParse(d.spec), sys))
	}
	return bindings
}

// bindReload (re)installs the manual reload binding. A file reload
// replaces the whole table, so the binding re-adds itself after every
// successful apply.
func (g *Game) bindReload(table *keybind.Table[key.Stroke], w *bindfile.Watcher) {
	table.Remove("reload")
	_ = table.Push(keybind.NewBinding("reload", key.MustParse("r"),
		keybind.SystemFunc(func(*world.World) error {
			if err := w.Reload(); err != nil {
				return err
			}
			g.bindReload(table, w)
			return nil
		})))
}

// registerLuaModule gives scripts their reach into the game.
func (g *Game) registerLuaModule(e *luabind.Engine) {
	e.RegisterModule("game", map[string]lua.LGFunction{
		"award": func(L *lua.LState) int {
			g.state.Score += int(L.OptNumber(1, 1))
			return 0
		},
		"pause": func(L *lua.LState) int {
			g.state.Paused = !g.state.Paused
			return 0
		},
		"spawn": func(L *lua.LState) int {
			g.spawnInto(g.ecs)
			return 0
		},
		"score": func(L *lua.LState) int {
			L.Push(lua.LNumber(g.state.Score))
			return 1
		},
	})
}

func (g *Game) draw(screen tcell.Screen, metrics *keybind.Metrics) {
	screen.Clear()

	width, height := screen.Size()
	if width > 0 && height > 2 {
		g.width, g.height = width, height-2
	}

	style := tcell.StyleDefault
	status := fmt.Sprintf("score %d  entities %d  ticks %d  dispatches %d",
		g.state.Score, g.ecs.Len(), metrics.Ticks(), metrics.Dispatches())
	if g.state.Paused {
		status += "  [paused]"
	}
	drawText(screen, 0, 0, style.Bold(true), status)
	drawText(screen, 0, 1, style, "Space pause  s spawn  a score  c clear  r reload  q quit")

	g.query.Each(g.ecs, func(entry *donburi.Entry) {
		pos := positionType.Get(entry)
		glyph := glyphType.Get(entry)
		screen.SetContent(int(pos.X), int(pos.Y)+2, glyph.Ch, nil, style)
	})

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// intArg reads an integer argument however the file format decoded it.
func intArg(args map[string]any, name string, def int) int {
	switch v := args[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}
