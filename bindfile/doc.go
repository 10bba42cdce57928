// Package bindfile loads binding tables from configuration files.
//
// A binding file declares a list of bindings, each with a label, a key
// spec parseable by the key package, an action name, and optional
// arguments. Files may be TOML, JSON, or YAML; the format is chosen by
// file extension.
//
// Actions are resolved to systems through a Resolver. File contents are
// staged in full before they touch a table: Apply parses every key and
// resolves every action first, then swaps the table contents in one
// Replace call, so a file with any bad entry leaves the table unchanged.
//
// Watch monitors a binding file with fsnotify and re-applies it when it
// changes, debouncing rapid writes. A reload that fails keeps the
// previous bindings in place.
package bindfile
