package key

import (
	"fmt"
	"strings"
)

// Code identifies a named keyboard key. Printable input uses CodeRune with
// the character stored in Stroke.Rune.
type Code uint16

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// Editing and navigation keys
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	// Arrow keys
	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	// CodeSpace is kept as a named key so bindings on the space bar read
	// as "Space" rather than an invisible rune.
	CodeSpace

	// CodeRune marks a printable key; the character is in Stroke.Rune.
	CodeRune
)

// codeNames holds the canonical display name for each named code.
var codeNames = map[Code]string{
	CodeNone:      "None",
	CodeEscape:    "Escape",
	CodeEnter:     "Enter",
	CodeTab:       "Tab",
	CodeBackspace: "Backspace",
	CodeDelete:    "Delete",
	CodeInsert:    "Insert",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PageUp",
	CodePageDown:  "PageDown",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeLeft:      "Left",
	CodeRight:     "Right",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
	CodeSpace:     "Space",
	CodeRune:      "Rune",
}

// nameCodes maps lowercase names, including aliases, back to codes.
var nameCodes = map[string]Code{
	"esc":    CodeEscape,
	"return": CodeEnter,
	"cr":     CodeEnter,
	"bs":     CodeBackspace,
	"del":    CodeDelete,
	"ins":    CodeInsert,
	"pgup":   CodePageUp,
	"pgdn":   CodePageDown,
}

func init() {
	for c, name := range codeNames {
		nameCodes[strings.ToLower(name)] = c
	}
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsFunction reports whether c is a function key (F1-F12).
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsArrow reports whether c is an arrow key.
func (c Code) IsArrow() bool {
	return c >= CodeUp && c <= CodeRight
}

// CodeFromName returns the Code for a given name (case-insensitive).
// Returns CodeNone if the name is not recognized.
func CodeFromName(name string) Code {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := nameCodes[name]; ok {
		return c
	}
	return CodeNone
}
