package key

import "strings"

// Mod is a bitmask of modifier keys held during a press.
type Mod uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mod = 0

	// ModShift indicates the Shift key.
	ModShift Mod = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has reports whether m contains mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// HasShift reports whether Shift is held.
func (m Mod) HasShift() bool { return m.Has(ModShift) }

// HasCtrl reports whether Control is held.
func (m Mod) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt reports whether Alt is held.
func (m Mod) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta reports whether Meta is held.
func (m Mod) HasMeta() bool { return m.Has(ModMeta) }

// With returns m with mod added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// Without returns m with mod removed.
func (m Mod) Without(mod Mod) Mod {
	return m &^ mod
}

// IsEmpty reports whether no modifiers are set.
func (m Mod) IsEmpty() bool {
	return m == ModNone
}

// String returns a readable form like "Ctrl+Alt".
// Order is fixed: Ctrl, Alt, Shift, Meta.
func (m Mod) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// modNames maps modifier names (lowercase) to Mod values.
var modNames = map[string]Mod{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}

// ModFromName returns the Mod for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModFromName(name string) Mod {
	if m, ok := modNames[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
