package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key spec")
	ErrInvalidSpec      = errors.New("invalid key spec")
	ErrUnterminatedSpec = errors.New("unterminated key spec")
)

// runeAliases are names for characters that cannot appear literally in a
// spec.
var runeAliases = map[string]rune{
	"lt":     '<',
	"gt":     '>',
	"bar":    '|',
	"bslash": '\\',
	"minus":  '-',
	"plus":   '+',
}

// Parse parses a key specification string into a Stroke.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Angle-bracket style: "<C-s>", "<A-f4>", "<CR>", "<Esc>", "<lt>"
//
// The result is normalized; see Normalize for the rules.
func Parse(spec string) (Stroke, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Stroke{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && len(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return Stroke{}, fmt.Errorf("%w: %q", ErrUnterminatedSpec, spec)
		}
		return parseAngle(spec[1 : len(spec)-1])
	}

	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parsePlus(spec)
	}

	return parseBare(spec)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Stroke {
	s, err := Parse(spec)
	if err != nil {
		panic("key: invalid spec " + spec + ": " + err.Error())
	}
	return s
}

// parseAngle handles the bracket interior: "C-s", "A-F4", "CR", "Esc".
// Leading hyphen-separated parts are single-letter modifiers, the final
// part is the key.
func parseAngle(inner string) (Stroke, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Stroke{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Mod
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModMeta)
		default:
			return Stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return finishKey(keyPart, mods)
}

// parsePlus handles "Ctrl+S" style: all parts but the last are modifier
// names.
func parsePlus(spec string) (Stroke, error) {
	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// "Ctrl++" splits into two trailing empties; the key itself is '+'.
	if keyPart == "" {
		keyPart = "+"
		if n := len(modParts); n > 0 && modParts[n-1] == "" {
			modParts = modParts[:n-1]
		}
	}

	var mods Mod
	for _, p := range modParts {
		p = strings.TrimSpace(p)
		mod := ModFromName(p)
		if mod == ModNone {
			return Stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return finishKey(keyPart, mods)
}

// parseBare handles a lone character or key name.
func parseBare(spec string) (Stroke, error) {
	return finishKey(spec, ModNone)
}

// finishKey resolves the key part once modifiers are known.
func finishKey(keyPart string, mods Mod) (Stroke, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Stroke{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)

	if r, ok := runeAliases[lower]; ok {
		return RuneStroke(r, mods), nil
	}

	if c := CodeFromName(lower); c != CodeNone && c != CodeRune {
		return CodeStroke(c, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return RuneStroke(runes[0], mods), nil
	}

	return Stroke{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
