package ebitenkeys

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dshills/keybind/key"
)

// JustPressed returns the strokes for keys that went down this frame,
// with the currently held modifiers applied. Call it from Update.
func JustPressed() []key.Stroke {
	keys := inpututil.AppendJustPressedKeys(nil)
	if len(keys) == 0 {
		return nil
	}

	mods := Modifiers()
	pressed := make([]key.Stroke, 0, len(keys))
	for _, k := range keys {
		if s, ok := FromKey(k, mods); ok {
			pressed = append(pressed, s)
		}
	}
	return pressed
}

// Modifiers reads the modifier keys currently held.
func Modifiers() key.Mod {
	var mods key.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= key.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= key.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= key.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= key.ModMeta
	}
	return mods
}

// FromKey converts an ebiten key plus a modifier set into a normalized
// stroke. Modifier keys themselves and keys with no stroke equivalent
// return false.
func FromKey(k ebiten.Key, mods key.Mod) (key.Stroke, bool) {
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return key.RuneStroke(rune('a'+(k-ebiten.KeyA)), mods), true
	}
	if k >= ebiten.KeyF1 && k <= ebiten.KeyF12 {
		return key.CodeStroke(key.CodeF1+key.Code(k-ebiten.KeyF1), mods), true
	}

	switch k {
	case ebiten.KeyDigit0:
		return key.RuneStroke('0', mods), true
	case ebiten.KeyDigit1:
		return key.RuneStroke('1', mods), true
	case ebiten.KeyDigit2:
		return key.RuneStroke('2', mods), true
	case ebiten.KeyDigit3:
		return key.RuneStroke('3', mods), true
	case ebiten.KeyDigit4:
		return key.RuneStroke('4', mods), true
	case ebiten.KeyDigit5:
		return key.RuneStroke('5', mods), true
	case ebiten.KeyDigit6:
		return key.RuneStroke('6', mods), true
	case ebiten.KeyDigit7:
		return key.RuneStroke('7', mods), true
	case ebiten.KeyDigit8:
		return key.RuneStroke('8', mods), true
	case ebiten.KeyDigit9:
		return key.RuneStroke('9', mods), true

	case ebiten.KeyMinus:
		return key.RuneStroke('-', mods), true
	case ebiten.KeyEqual:
		return key.RuneStroke('=', mods), true
	case ebiten.KeyComma:
		return key.RuneStroke(',', mods), true
	case ebiten.KeyPeriod:
		return key.RuneStroke('.', mods), true
	case ebiten.KeySlash:
		return key.RuneStroke('/', mods), true
	case ebiten.KeyBackslash:
		return key.RuneStroke('\\', mods), true
	case ebiten.KeySemicolon:
		return key.RuneStroke(';', mods), true
	case ebiten.KeyQuote:
		return key.RuneStroke('\'', mods), true
	case ebiten.KeyBracketLeft:
		return key.RuneStroke('[', mods), true
	case ebiten.KeyBracketRight:
		return key.RuneStroke(']', mods), true
	case ebiten.KeyBackquote:
		return key.RuneStroke('`', mods), true

	case ebiten.KeySpace:
		return key.CodeStroke(key.CodeSpace, mods), true
	case ebiten.KeyEnter:
		return key.CodeStroke(key.CodeEnter, mods), true
	case ebiten.KeyEscape:
		return key.CodeStroke(key.CodeEscape, mods), true
	case ebiten.KeyTab:
		return key.CodeStroke(key.CodeTab, mods), true
	case ebiten.KeyBackspace:
		return key.CodeStroke(key.CodeBackspace, mods), true
	case ebiten.KeyDelete:
		return key.CodeStroke(key.CodeDelete, mods), true
	case ebiten.KeyInsert:
		return key.CodeStroke(key.CodeInsert, mods), true
	case ebiten.KeyHome:
		return key.CodeStroke(key.CodeHome, mods), true
	case ebiten.KeyEnd:
		return key.CodeStroke(key.CodeEnd, mods), true
	case ebiten.KeyPageUp:
		return key.CodeStroke(key.CodePageUp, mods), true
	case ebiten.KeyPageDown:
		return key.CodeStroke(key.CodePageDown, mods), true
	case ebiten.KeyArrowUp:
		return key.CodeStroke(key.CodeUp, mods), true
	case ebiten.KeyArrowDown:
		return key.CodeStroke(key.CodeDown, mods), true
	case ebiten.KeyArrowLeft:
		return key.CodeStroke(key.CodeLeft, mods), true
	case ebiten.KeyArrowRight:
		return key.CodeStroke(key.CodeRight, mods), true
	}

	return key.Stroke{}, false
}
