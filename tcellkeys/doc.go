// Package tcellkeys feeds tcell terminal input into binding tables.
//
// FromEvent converts one tcell key event into a key.Stroke. A Collector
// accumulates events between ticks and hands the runner its pressed set:
//
//	col := tcellkeys.NewCollector()
//	go func() {
//	    for {
//	        if ev, ok := screen.PollEvent().(*tcell.EventKey); ok {
//	            col.HandleEvent(ev)
//	        }
//	    }
//	}()
//	// each frame:
//	runner.Tick(w, col.JustPressed())
//
// Terminals report key presses, not held keys, so the pressed set for a
// tick is the strokes received since the previous tick.
package tcellkeys
