package key

import (
	"errors"
	"testing"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
		wantMods Mod
	}{
		{"a", 'a', ModNone},
		{"A", 'A', ModNone},
		{"1", '1', ModNone},
		{"@", '@', ModNone},
		{"+", '+', ModNone},
		{">", '>', ModNone},
	}

	for _, tt := range tests {
		s, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if s.Code != CodeRune {
			t.Errorf("Parse(%q) code = %v, want CodeRune", tt.spec, s.Code)
		}
		if s.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, s.Rune, tt.wantRune)
		}
		if s.Mods != tt.wantMods {
			t.Errorf("Parse(%q) mods = %v, want %v", tt.spec, s.Mods, tt.wantMods)
		}
	}
}

func TestParseNamedKeys(t *testing.T) {
	tests := []struct {
		spec     string
		wantCode Code
	}{
		{"Enter", CodeEnter},
		{"enter", CodeEnter},
		{"Escape", CodeEscape},
		{"esc", CodeEscape},
		{"Tab", CodeTab},
		{"Backspace", CodeBackspace},
		{"Space", CodeSpace},
		{"Delete", CodeDelete},
		{"Up", CodeUp},
		{"Down", CodeDown},
		{"Left", CodeLeft},
		{"Right", CodeRight},
		{"Home", CodeHome},
		{"End", CodeEnd},
		{"PageUp", CodePageUp},
		{"pgdn", CodePageDown},
		{"F1", CodeF1},
		{"F12", CodeF12},
	}

	for _, tt := range tests {
		s, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if s.Code != tt.wantCode {
			t.Errorf("Parse(%q) code = %v, want %v", tt.spec, s.Code, tt.wantCode)
		}
		if s.Rune != 0 {
			t.Errorf("Parse(%q) rune = %q, want 0", tt.spec, s.Rune)
		}
	}
}

func TestParseModifierStyle(t *testing.T) {
	tests := []struct {
		spec string
		want Stroke
	}{
		{"Ctrl+S", Stroke{Code: CodeRune, Rune: 's', Mods: ModCtrl}},
		{"ctrl+s", Stroke{Code: CodeRune, Rune: 's', Mods: ModCtrl}},
		{"Alt+F4", Stroke{Code: CodeF4, Mods: ModAlt}},
		{"Ctrl+Alt+Delete", Stroke{Code: CodeDelete, Mods: ModCtrl | ModAlt}},
		{"Shift+Tab", Stroke{Code: CodeTab, Mods: ModShift}},
		{"Ctrl+Space", Stroke{Code: CodeSpace, Mods: ModCtrl}},
		{"Ctrl++", Stroke{Code: CodeRune, Rune: '+', Mods: ModCtrl}},
		{"Shift+a", Stroke{Code: CodeRune, Rune: 'A'}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseAngleStyle(t *testing.T) {
	tests := []struct {
		spec string
		want Stroke
	}{
		{"<C-s>", Stroke{Code: CodeRune, Rune: 's', Mods: ModCtrl}},
		{"<C-S>", Stroke{Code: CodeRune, Rune: 's', Mods: ModCtrl}},
		{"<A-f>", Stroke{Code: CodeRune, Rune: 'f', Mods: ModAlt}},
		{"<C-A-x>", Stroke{Code: CodeRune, Rune: 'x', Mods: ModCtrl | ModAlt}},
		{"<CR>", Stroke{Code: CodeEnter}},
		{"<Esc>", Stroke{Code: CodeEscape}},
		{"<Space>", Stroke{Code: CodeSpace}},
		{"<S-Tab>", Stroke{Code: CodeTab, Mods: ModShift}},
		{"<M-x>", Stroke{Code: CodeRune, Rune: 'x', Mods: ModMeta}},
		{"<D-x>", Stroke{Code: CodeRune, Rune: 'x', Mods: ModMeta}},
		{"<lt>", Stroke{Code: CodeRune, Rune: '<'}},
		{"<C-bar>", Stroke{Code: CodeRune, Rune: '|', Mods: ModCtrl}},
		{"<F5>", Stroke{Code: CodeF5}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseShiftFolding(t *testing.T) {
	// Shift on a letter folds into the rune's case, so the same press
	// parses equal no matter how it is written.
	specs := []string{"A", "Shift+a", "<S-a>"}
	want := Stroke{Code: CodeRune, Rune: 'A'}

	for _, spec := range specs {
		got, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", spec, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %+v, want %+v", spec, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"<C-s", ErrUnterminatedSpec},
		{"<>", ErrInvalidSpec},
		{"<Q-s>", ErrInvalidSpec},
		{"Bogus+x", ErrInvalidSpec},
		{"notakey", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	strokes := []Stroke{
		RuneStroke('a', ModNone),
		RuneStroke('A', ModNone),
		RuneStroke('s', ModCtrl),
		RuneStroke('<', ModNone),
		RuneStroke('x', ModCtrl|ModAlt|ModMeta),
		CodeStroke(CodeEnter, ModNone),
		CodeStroke(CodeSpace, ModNone),
		CodeStroke(CodeTab, ModShift),
		CodeStroke(CodeF11, ModAlt),
	}

	for _, s := range strokes {
		spec := s.String()
		got, err := Parse(spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", spec, err)
			continue
		}
		if got != s {
			t.Errorf("Parse(%q) = %+v, want %+v", spec, got, s)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse with invalid spec did not panic")
		}
	}()
	MustParse("<C-")
}
