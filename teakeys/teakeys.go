package teakeys

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/keybind/key"
)

// FromMsg converts a Bubble Tea key message into a normalized stroke.
// It returns false for messages with no stroke equivalent, including
// pastes.
func FromMsg(msg tea.KeyMsg) (key.Stroke, bool) {
	var mods key.Mod
	if msg.Alt {
		mods |= key.ModAlt
	}

	t := msg.Type
	switch t {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return key.Stroke{}, false
		}
		return key.RuneStroke(msg.Runes[0], mods), true

	case tea.KeySpace:
		return key.CodeStroke(key.CodeSpace, mods), true

	// Control-code aliases come first: Bubble Tea delivers Tab as
	// Ctrl-I, Enter as Ctrl-M, and Backspace as DEL.
	case tea.KeyEnter:
		return key.CodeStroke(key.CodeEnter, mods), true
	case tea.KeyTab:
		return key.CodeStroke(key.CodeTab, mods), true
	case tea.KeyShiftTab:
		return key.CodeStroke(key.CodeTab, mods.With(key.ModShift)), true
	case tea.KeyBackspace:
		return key.CodeStroke(key.CodeBackspace, mods), true
	case tea.KeyEscape:
		return key.CodeStroke(key.CodeEscape, mods), true

	case tea.KeyDelete:
		return key.CodeStroke(key.CodeDelete, mods), true
	case tea.KeyInsert:
		return key.CodeStroke(key.CodeInsert, mods), true
	case tea.KeyHome:
		return key.CodeStroke(key.CodeHome, mods), true
	case tea.KeyEnd:
		return key.CodeStroke(key.CodeEnd, mods), true
	case tea.KeyPgUp:
		return key.CodeStroke(key.CodePageUp, mods), true
	case tea.KeyPgDown:
		return key.CodeStroke(key.CodePageDown, mods), true

	case tea.KeyUp:
		return key.CodeStroke(key.CodeUp, mods), true
	case tea.KeyDown:
		return key.CodeStroke(key.CodeDown, mods), true
	case tea.KeyLeft:
		return key.CodeStroke(key.CodeLeft, mods), true
	case tea.KeyRight:
		return key.CodeStroke(key.CodeRight, mods), true

	case tea.KeyShiftUp:
		return key.CodeStroke(key.CodeUp, mods.With(key.ModShift)), true
	case tea.KeyShiftDown:
		return key.CodeStroke(key.CodeDown, mods.With(key.ModShift)), true
	case tea.KeyShiftLeft:
		return key.CodeStroke(key.CodeLeft, mods.With(key.ModShift)), true
	case tea.KeyShiftRight:
		return key.CodeStroke(key.CodeRight, mods.With(key.ModShift)), true

	case tea.KeyCtrlUp:
		return key.CodeStroke(key.CodeUp, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlDown:
		return key.CodeStroke(key.CodeDown, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlLeft:
		return key.CodeStroke(key.CodeLeft, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlRight:
		return key.CodeStroke(key.CodeRight, mods.With(key.ModCtrl)), true

	case tea.KeyCtrlShiftUp:
		return key.CodeStroke(key.CodeUp, mods.With(key.ModCtrl).With(key.ModShift)), true
	case tea.KeyCtrlShiftDown:
		return key.CodeStroke(key.CodeDown, mods.With(key.ModCtrl).With(key.ModShift)), true
	case tea.KeyCtrlShiftLeft:
		return key.CodeStroke(key.CodeLeft, mods.With(key.ModCtrl).With(key.ModShift)), true
	case tea.KeyCtrlShiftRight:
		return key.CodeStroke(key.CodeRight, mods.With(key.ModCtrl).With(key.ModShift)), true

	case tea.KeyCtrlHome:
		return key.CodeStroke(key.CodeHome, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlEnd:
		return key.CodeStroke(key.CodeEnd, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlPgUp:
		return key.CodeStroke(key.CodePageUp, mods.With(key.ModCtrl)), true
	case tea.KeyCtrlPgDown:
		return key.CodeStroke(key.CodePageDown, mods.With(key.ModCtrl)), true
	}

	// Function key types count downward from KeyF1.
	if t <= tea.KeyF1 && t >= tea.KeyF12 {
		return key.CodeStroke(key.CodeF1+key.Code(tea.KeyF1-t), mods), true
	}

	// Remaining control codes surface as Ctrl plus the letter.
	if t >= tea.KeyCtrlA && t <= tea.KeyCtrlZ {
		r := rune('a' + (t - tea.KeyCtrlA))
		return key.RuneStroke(r, mods.With(key.ModCtrl)), true
	}

	return key.Stroke{}, false
}

// Matches reports whether a key message is any of the given strokes.
func Matches(msg tea.KeyMsg, strokes ...key.Stroke) bool {
	s, ok := FromMsg(msg)
	if !ok {
		return false
	}
	for _, want := range strokes {
		if s == key.Normalize(want) {
			return true
		}
	}
	return false
}
