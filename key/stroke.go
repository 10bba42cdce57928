package key

import (
	"strings"
	"unicode"
)

// Stroke is one just-pressed key. It is a plain comparable value: two
// strokes describe the same press exactly when they are equal with ==,
// which is what binding tables rely on when matching.
type Stroke struct {
	// Code identifies a named key, or CodeRune for printable input.
	Code Code

	// Rune is the character for CodeRune strokes, 0 otherwise.
	Rune rune

	// Mods contains the held modifier keys.
	Mods Mod
}

// RuneStroke returns a normalized stroke for a printable character.
func RuneStroke(r rune, mods Mod) Stroke {
	return Normalize(Stroke{Code: CodeRune, Rune: r, Mods: mods})
}

// CodeStroke returns a normalized stroke for a named key.
func CodeStroke(c Code, mods Mod) Stroke {
	return Normalize(Stroke{Code: c, Mods: mods})
}

// Normalize rewrites s into the canonical form every input backend and the
// spec parser agree on, so equal presses compare equal:
//
//   - a space rune becomes CodeSpace
//   - named keys carry no rune
//   - letters under Ctrl are lowercased
//   - Shift on a letter folds into the rune's case and is dropped
//     (the rune carries its own case; ModShift stays meaningful only for
//     named keys and non-letter runes)
func Normalize(s Stroke) Stroke {
	if s.Code == CodeRune && s.Rune == ' ' {
		s.Code = CodeSpace
		s.Rune = 0
	}
	if s.Code != CodeRune {
		s.Rune = 0
		return s
	}
	if s.Mods.HasCtrl() && unicode.IsLetter(s.Rune) {
		s.Rune = unicode.ToLower(s.Rune)
	}
	if s.Mods.HasShift() && unicode.IsLetter(s.Rune) {
		s.Rune = unicode.ToUpper(s.Rune)
		s.Mods = s.Mods.Without(ModShift)
	}
	return s
}

// IsRune reports whether this is a printable character stroke.
func (s Stroke) IsRune() bool {
	return s.Code == CodeRune && s.Rune != 0
}

// IsZero reports whether the stroke is the zero value.
func (s Stroke) IsZero() bool {
	return s == Stroke{}
}

// String returns the canonical spec form of the stroke. The result parses
// back to an equal stroke: "a", "A", "Space", "F5", "<C-s>", "<A-Enter>".
func (s Stroke) String() string {
	name := s.keyName()
	if s.Mods.IsEmpty() {
		// Bare angle brackets only parse in escaped form.
		if s.Code == CodeRune && (s.Rune == '<' || s.Rune == '>') {
			return "<" + name + ">"
		}
		return name
	}

	var parts []string
	if s.Mods.HasCtrl() {
		parts = append(parts, "C")
	}
	if s.Mods.HasAlt() {
		parts = append(parts, "A")
	}
	if s.Mods.HasShift() {
		parts = append(parts, "S")
	}
	if s.Mods.HasMeta() {
		parts = append(parts, "M")
	}
	parts = append(parts, name)
	return "<" + strings.Join(parts, "-") + ">"
}

func (s Stroke) keyName() string {
	if s.Code == CodeRune {
		switch s.Rune {
		case '<':
			return "lt"
		case '>':
			return "gt"
		default:
			return string(s.Rune)
		}
	}
	return s.Code.String()
}
