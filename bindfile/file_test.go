package bindfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tomlContent = `
name = "test"

[[bindings]]
label = "save"
key = "<C-s>"
action = "file.save"

[[bindings]]
key = "q"
action = "app.quit"

[[bindings]]
label = "jump"
key = "Space"
action = "player.jump"
[bindings.args]
height = 2
`

const jsonContent = `{
  "name": "test",
  "bindings": [
    {"label": "save", "key": "<C-s>", "action": "file.save"},
    {"key": "q", "action": "app.quit"},
    {"label": "jump", "key": "Space", "action": "player.jump", "args": {"height": 2}}
  ]
}`

const yamlContent = `
name: test
bindings:
  - label: save
    key: <C-s>
    action: file.save
  - key: q
    action: app.quit
  - label: jump
    key: Space
    action: player.jump
    args:
      height: 2
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"bindings.toml", FormatTOML, false},
		{"bindings.json", FormatJSON, false},
		{"bindings.yaml", FormatYAML, false},
		{"bindings.yml", FormatYAML, false},
		{"bindings.TOML", FormatTOML, false},
		{"/etc/game/keys.json", FormatJSON, false},
		{"bindings.ini", FormatTOML, true},
		{"bindings", FormatTOML, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("DetectFormat(%q) error = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatTOML, "toml"},
		{FormatJSON, "json"},
		{FormatYAML, "yaml"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.format), got, tt.want)
		}
	}
}

func checkFile(t *testing.T, f *File) {
	t.Helper()

	if f.Name != "test" {
		t.Errorf("Name = %q, want %q", f.Name, "test")
	}
	if len(f.Bindings) != 3 {
		t.Fatalf("len(Bindings) = %d, want 3", len(f.Bindings))
	}

	first := f.Bindings[0]
	if first.Label != "save" || first.Key != "<C-s>" || first.Action != "file.save" {
		t.Errorf("Bindings[0] = %+v, want save/<C-s>/file.save", first)
	}
	if f.Bindings[1].Label != "" {
		t.Errorf("Bindings[1].Label = %q, want empty", f.Bindings[1].Label)
	}
	if f.Bindings[2].Args == nil {
		t.Fatal("Bindings[2].Args = nil, want height arg")
	}
	if _, ok := f.Bindings[2].Args["height"]; !ok {
		t.Errorf("Bindings[2].Args = %v, want height key", f.Bindings[2].Args)
	}
}

func TestLoadTOML(t *testing.T) {
	f, err := Load(strings.NewReader(tomlContent), FormatTOML)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	checkFile(t, f)

	if h, ok := f.Bindings[2].Args["height"].(int64); !ok || h != 2 {
		t.Errorf("Args[height] = %v (%T), want int64 2", f.Bindings[2].Args["height"], f.Bindings[2].Args["height"])
	}
}

func TestLoadJSON(t *testing.T) {
	f, err := Load(strings.NewReader(jsonContent), FormatJSON)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	checkFile(t, f)

	if h, ok := f.Bindings[2].Args["height"].(float64); !ok || h != 2 {
		t.Errorf("Args[height] = %v (%T), want float64 2", f.Bindings[2].Args["height"], f.Bindings[2].Args["height"])
	}
}

func TestLoadYAML(t *testing.T) {
	f, err := Load(strings.NewReader(yamlContent), FormatYAML)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	checkFile(t, f)

	if h, ok := f.Bindings[2].Args["height"].(int); !ok || h != 2 {
		t.Errorf("Args[height] = %v (%T), want int 2", f.Bindings[2].Args["height"], f.Bindings[2].Args["height"])
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"keys.toml": tomlContent,
		"keys.json": jsonContent,
		"keys.yaml": yamlContent,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile error = %v", err)
			}

			f, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile error = %v", err)
			}
			checkFile(t, f)
		})
	}
}

func TestLoadFileUnknownExtension(t *testing.T) {
	_, err := LoadFile("bindings.conf")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("LoadFile on missing file returned nil error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"toml", "[[bindings\nkey = ", FormatTOML},
		{"json", `{"bindings": [`, FormatJSON},
		{"yaml", "bindings:\n  - key: [unclosed", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.content), tt.format)
			if err == nil {
				t.Fatal("Load on malformed input returned nil error")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load error = %T, want *ParseError", err)
			}
			if perr.Format != tt.format {
				t.Errorf("ParseError.Format = %v, want %v", perr.Format, tt.format)
			}
			if perr.Path != "<reader>" {
				t.Errorf("ParseError.Path = %q, want %q", perr.Path, "<reader>")
			}
			if perr.Unwrap() == nil {
				t.Error("ParseError.Unwrap() = nil, want decoder error")
			}
		})
	}
}
