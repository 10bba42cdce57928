package bindfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Errors returned when loading binding files.
var (
	// ErrUnknownFormat is returned when a file extension does not map to
	// a supported format.
	ErrUnknownFormat = errors.New("bindfile: unknown file format")
)

// Format identifies a binding file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
	FormatYAML
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat chooses a format from a file path's extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Def is a single binding declaration in a file.
type Def struct {
	// Label names the binding for removal and logging. Defaults to the
	// action name when empty.
	Label string `toml:"label,omitempty" json:"label,omitempty" yaml:"label,omitempty"`

	// Key is the key spec, in the syntax accepted by key.Parse.
	Key string `toml:"key" json:"key" yaml:"key"`

	// Action names the system to bind, resolved through a Resolver.
	Action string `toml:"action" json:"action" yaml:"action"`

	// Args carries optional action parameters.
	Args map[string]any `toml:"args,omitempty" json:"args,omitempty" yaml:"args,omitempty"`
}

// File is a parsed binding file.
type File struct {
	// Name optionally identifies the binding set.
	Name string `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`

	// Bindings are applied to a table in declaration order.
	Bindings []Def `toml:"bindings" json:"bindings" yaml:"bindings"`
}

// ParseError reports a failure to decode a binding file.
type ParseError struct {
	Path    string
	Format  Format
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bindfile: parsing %s (%s): %s", e.Path, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile reads and parses a binding file, choosing the format from the
// file extension.
func LoadFile(path string) (*File, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bindfile: opening %s: %w", path, err)
	}
	defer f.Close()

	return load(f, format, path)
}

// Load parses binding file content from a reader in the given format.
func Load(r io.Reader, format Format) (*File, error) {
	return load(r, format, "<reader>")
}

func load(r io.Reader, format Format, source string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bindfile: reading %s: %w", source, err)
	}

	var file File
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, &ParseError{
			Path:    source,
			Format:  format,
			Message: err.Error(),
			Err:     err,
		}
	}

	return &file, nil
}
