// Package teakeys feeds Bubble Tea key messages into binding tables.
//
// FromMsg converts a tea.KeyMsg into a key.Stroke for the runner:
//
//	case tea.KeyMsg:
//	    if s, ok := teakeys.FromMsg(msg); ok {
//	        err = m.runner.Tick(m.world, []key.Stroke{s})
//	    }
//
// Matches tests a message against strokes directly. HelpBinding bridges
// to bubbles' key.Binding so stroke-defined bindings show up in help
// views with their canonical spelling.
package teakeys
