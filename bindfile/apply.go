package bindfile

import (
	"fmt"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/key"
)

// Build resolves every declaration into a table binding. It fails on
// the first bad entry and builds nothing partially.
func (f *File) Build(r Resolver) ([]keybind.Binding[key.Stroke], error) {
	bindings := make([]keybind.Binding[key.Stroke], 0, len(f.Bindings))
	for i, def := range f.Bindings {
		label := def.Label
		if label == "" {
			label = def.Action
		}

		stroke, err := key.Parse(def.Key)
		if err != nil {
			return nil, fmt.Errorf("bindfile: binding %d (%s): key %q: %w", i, label, def.Key, err)
		}

		sys, err := r.Resolve(def.Action, def.Args)
		if err != nil {
			return nil, fmt.Errorf("bindfile: binding %d (%s): %w", i, label, err)
		}

		bindings = append(bindings, keybind.NewBinding(label, stroke, sys))
	}
	return bindings, nil
}

// Apply replaces the table's contents with this file's bindings. The
// whole file is resolved before the table is touched, so a file with a
// bad key spec or unknown action leaves the table unchanged.
func (f *File) Apply(tbl *keybind.Table[key.Stroke], r Resolver) error {
	bindings, err := f.Build(r)
	if err != nil {
		return err
	}
	return tbl.Replace(bindings...)
}
