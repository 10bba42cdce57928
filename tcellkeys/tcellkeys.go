package tcellkeys

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/key"
)

// FromEvent converts a tcell key event into a normalized stroke. It
// returns false for keys with no stroke equivalent, which the caller
// should drop.
func FromEvent(ev *tcell.EventKey) (key.Stroke, bool) {
	mods := fromMod(ev.Modifiers())

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		return key.RuneStroke(ev.Rune(), mods), true

	// Control-code aliases come first: terminals deliver Tab as Ctrl-I,
	// Enter as Ctrl-M, and Backspace as Ctrl-H, and the named key is
	// what the user pressed.
	case tcell.KeyEnter:
		return key.CodeStroke(key.CodeEnter, mods), true
	case tcell.KeyTab:
		return key.CodeStroke(key.CodeTab, mods), true
	case tcell.KeyBacktab:
		return key.CodeStroke(key.CodeTab, mods.With(key.ModShift)), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeStroke(key.CodeBackspace, mods), true
	case tcell.KeyEscape:
		return key.CodeStroke(key.CodeEscape, mods), true
	case tcell.KeyCtrlSpace:
		return key.CodeStroke(key.CodeSpace, mods.With(key.ModCtrl)), true

	case tcell.KeyDelete:
		return key.CodeStroke(key.CodeDelete, mods), true
	case tcell.KeyInsert:
		return key.CodeStroke(key.CodeInsert, mods), true
	case tcell.KeyHome:
		return key.CodeStroke(key.CodeHome, mods), true
	case tcell.KeyEnd:
		return key.CodeStroke(key.CodeEnd, mods), true
	case tcell.KeyPgUp:
		return key.CodeStroke(key.CodePageUp, mods), true
	case tcell.KeyPgDn:
		return key.CodeStroke(key.CodePageDown, mods), true
	case tcell.KeyUp:
		return key.CodeStroke(key.CodeUp, mods), true
	case tcell.KeyDown:
		return key.CodeStroke(key.CodeDown, mods), true
	case tcell.KeyLeft:
		return key.CodeStroke(key.CodeLeft, mods), true
	case tcell.KeyRight:
		return key.CodeStroke(key.CodeRight, mods), true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.CodeStroke(key.CodeF1+key.Code(k-tcell.KeyF1), mods), true
	}

	// Remaining control codes surface as Ctrl plus the letter, matching
	// the "<C-x>" spelling in binding files.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.RuneStroke(r, mods.With(key.ModCtrl)), true
	}

	return key.Stroke{}, false
}

// fromMod converts a tcell modifier mask.
func fromMod(m tcell.ModMask) key.Mod {
	var mods key.Mod
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

// Collector accumulates strokes between ticks. The event loop feeds it
// from its goroutine; the game loop drains it once per frame.
type Collector struct {
	mu      sync.Mutex
	pressed []key.Stroke
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// HandleEvent records a key event's stroke. Events with no stroke
// equivalent are dropped.
func (c *Collector) HandleEvent(ev *tcell.EventKey) {
	s, ok := FromEvent(ev)
	if !ok {
		return
	}

	c.mu.Lock()
	c.pressed = append(c.pressed, s)
	c.mu.Unlock()
}

// JustPressed returns the strokes received since the last call and
// clears the set. The result is in arrival order; nil when idle.
func (c *Collector) JustPressed() []key.Stroke {
	c.mu.Lock()
	defer c.mu.Unlock()

	pressed := c.pressed
	c.pressed = nil
	return pressed
}
