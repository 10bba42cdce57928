// Package ebitenkeys feeds Ebitengine keyboard input into binding
// tables.
//
// Call JustPressed from inside your game's Update to get the strokes
// for keys that went down this frame:
//
//	func (g *Game) Update() error {
//	    return g.runner.Tick(g.world, ebitenkeys.JustPressed())
//	}
//
// Ebitengine reports physical keys, so shifted punctuation arrives as
// the base key with ModShift: Shift+1 is the stroke "<S-1>", not "!".
// Letter keys fold as usual, so Shift+A still matches the binding "A".
package ebitenkeys
