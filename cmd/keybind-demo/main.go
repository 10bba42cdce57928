// Package main is a terminal playground for the keybind runner: a
// fixed-timestep game loop over a donburi entity world, driven by a
// binding table with optional live-reloaded binding files and Lua
// callbacks.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/bindfile"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/luabind"
	"github.com/dshills/keybind/tcellkeys"
	"github.com/dshills/keybind/world"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const (
	// frameInterval paces input sampling and rendering.
	frameInterval = time.Second / 60

	// stepInterval is the fixed simulation timestep; the frame loop
	// runs it through a lag accumulator.
	stepInterval = time.Second / 30
)

// Options holds the parsed command line.
type Options struct {
	BindingsPath string
	ScriptPath   string
	LogPath      string
	LogLevel     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, logClose, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logClose()

	game := newGame()

	w := world.NewWorld()
	w.SetEnv(world.Wrap(game.state))
	world.SetResource(w, game.ecs)

	// Lua engine is optional; scripts get a sandboxed state plus the
	// game module.
	var engine *luabind.Engine
	if opts.ScriptPath != "" {
		engine = luabind.NewEngine(luabind.Sandboxed())
		defer engine.Close()
		game.registerLuaModule(engine)
		if err := engine.LoadFile(opts.ScriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading script: %v\n", err)
			return 1
		}
	}

	resolver := game.resolver(engine)

	table := keybind.NewTable(game.defaultBindings(resolver)...)
	metrics := keybind.NewMetrics()
	runner := keybind.NewRunner(table,
		keybind.WithLogger(logger),
		keybind.WithMetrics(metrics),
	)

	// A bindings file replaces the defaults and is re-applied on save.
	// Every successful apply wipes the table, so the reload binding is
	// put back after each one.
	var watcher *bindfile.Watcher
	if opts.BindingsPath != "" {
		watcher, err = bindfile.Watch(opts.BindingsPath, table, resolver,
			bindfile.WithWatchLogger(logger),
			bindfile.WithOnReload(func(err error) {
				if err == nil {
					game.bindReload(table, watcher)
				}
			}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading bindings: %v\n", err)
			return 1
		}
		defer watcher.Close()
		game.bindReload(table, watcher)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Terminal signals request the same orderly exit as the quit
	// binding.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		game.requestQuit()
	}()

	collector := tcellkeys.NewCollector()
	go pollEvents(screen, collector)

	loop(screen, collector, runner, w, game, metrics, logger)
	return 0
}

// pollEvents feeds terminal key events to the collector until the
// screen is finalized.
func pollEvents(screen tcell.Screen, collector *tcellkeys.Collector) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			collector.HandleEvent(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// loop runs frames at frameInterval: dispatch the tick's pressed keys,
// then advance the simulation by however many fixed steps the elapsed
// time covers, then draw.
func loop(screen tcell.Screen, collector *tcellkeys.Collector, runner *keybind.Runner[key.Stroke], w *world.World, game *Game, metrics *keybind.Metrics, logger *keybind.Logger) {
	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	previous := time.Now()
	var lag time.Duration

	for !game.quitRequested() {
		<-frames.C

		now := time.Now()
		lag += now.Sub(previous)
		previous = now

		// Runner errors are already logged; the demo keeps going.
		_ = runner.Tick(w, collector.JustPressed())

		for lag >= stepInterval {
			if !game.state.Paused {
				game.step()
			}
			lag -= stepInterval
		}

		game.draw(screen, metrics)
	}

	logger.Info("exiting: ticks=%d dispatches=%d failures=%d",
		metrics.Ticks(), metrics.Dispatches(), metrics.Failures())
}

func newLogger(opts Options) (*keybind.Logger, func(), error) {
	if opts.LogPath == "" {
		return keybind.NullLogger, func() {}, nil
	}

	f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := keybind.NewLogger(keybind.LoggerConfig{
		Level:  keybind.ParseLogLevel(opts.LogLevel),
		Output: f,
		Prefix: "keybind-demo",
	})
	return logger, func() { f.Close() }, nil
}

func parseFlags() Options {
	var opts Options
	var showVersion bool

	flag.StringVar(&opts.BindingsPath, "bindings", "", "Binding file (.toml/.json/.yaml), live-reloaded on save")
	flag.StringVar(&opts.BindingsPath, "b", "", "Binding file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script defining callback functions")
	flag.StringVar(&opts.ScriptPath, "s", "", "Lua script (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Log file (the screen is owned by the demo; no path means no logging)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybind-demo - binding table playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybind-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDefault bindings:\n")
		fmt.Fprintf(os.Stderr, "  Space  pause/resume      s  spawn an entity\n")
		fmt.Fprintf(os.Stderr, "  a      score a point     c  clear entities\n")
		fmt.Fprintf(os.Stderr, "  q/Esc  quit              r  reload bindings (with -bindings)\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keybind-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}
