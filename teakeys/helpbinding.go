package teakeys

import (
	"strings"

	bbkey "github.com/charmbracelet/bubbles/key"

	"github.com/dshills/keybind/key"
)

// teaNames maps named codes to Bubble Tea's key strings.
var teaNames = map[key.Code]string{
	key.CodeEscape:    "esc",
	key.CodeEnter:     "enter",
	key.CodeTab:       "tab",
	key.CodeBackspace: "backspace",
	key.CodeDelete:    "delete",
	key.CodeInsert:    "insert",
	key.CodeHome:      "home",
	key.CodeEnd:       "end",
	key.CodePageUp:    "pgup",
	key.CodePageDown:  "pgdown",
	key.CodeUp:        "up",
	key.CodeDown:      "down",
	key.CodeLeft:      "left",
	key.CodeRight:     "right",
	key.CodeF1:        "f1",
	key.CodeF2:        "f2",
	key.CodeF3:        "f3",
	key.CodeF4:        "f4",
	key.CodeF5:        "f5",
	key.CodeF6:        "f6",
	key.CodeF7:        "f7",
	key.CodeF8:        "f8",
	key.CodeF9:        "f9",
	key.CodeF10:       "f10",
	key.CodeF11:       "f11",
	key.CodeF12:       "f12",
	key.CodeSpace:     " ",
}

// TeaString renders a stroke in the spelling Bubble Tea's Key.String
// uses, the form bubbles' key.WithKeys expects. Strokes Bubble Tea
// cannot deliver, such as Meta combinations, return false.
func TeaString(s key.Stroke) (string, bool) {
	s = key.Normalize(s)

	if s.Mods.HasMeta() {
		return "", false
	}

	// Bubble Tea spells modifiers alt+ctrl+shift+, outermost first.
	var b strings.Builder
	if s.Mods.HasAlt() {
		b.WriteString("alt+")
	}
	if s.Mods.HasCtrl() {
		b.WriteString("ctrl+")
	}
	if s.Mods.HasShift() {
		b.WriteString("shift+")
	}

	if s.Code == key.CodeRune {
		b.WriteRune(s.Rune)
		return b.String(), true
	}

	name, ok := teaNames[s.Code]
	if !ok {
		return "", false
	}
	b.WriteString(name)
	return b.String(), true
}

// HelpBinding builds a bubbles key.Binding for the given strokes, with
// the first stroke's canonical spelling as the help key. Strokes with
// no Bubble Tea form are skipped; a binding with none is disabled.
func HelpBinding(desc string, strokes ...key.Stroke) bbkey.Binding {
	keys := make([]string, 0, len(strokes))
	for _, s := range strokes {
		if ts, ok := TeaString(s); ok {
			keys = append(keys, ts)
		}
	}

	if len(keys) == 0 {
		return bbkey.NewBinding(bbkey.WithDisabled())
	}

	return bbkey.NewBinding(
		bbkey.WithKeys(keys...),
		bbkey.WithHelp(key.Normalize(strokes[0]).String(), desc),
	)
}
