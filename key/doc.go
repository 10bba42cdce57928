// Package key defines the key identity used by binding tables.
//
// A Stroke is one just-pressed key: a named Code (Enter, F5, Space, the
// arrows) or a printable rune, plus a Mod bitmask. Strokes are plain
// comparable values so they can serve as binding keys and map keys
// directly.
//
// # Key Specifications
//
// Strokes can be written as text in binding files and parsed with Parse:
//
//   - Simple keys: "a", "A", "1", "Enter", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Angle-bracket style: "<C-s>", "<A-f4>", "<CR>", "<Esc>"
//
// Parsed strokes are normalized (see Normalize) so that the same physical
// press produces the same Stroke no matter which input backend reported it.
//
// Multi-key sequences and chords are out of scope; one Stroke is one press.
package key
