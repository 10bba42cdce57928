package keybind

import (
	"errors"
	"testing"

	"github.com/dshills/keybind/world"
)

func TestSystemFuncDrainsCommands(t *testing.T) {
	applied := false
	sys := SystemFunc(func(w *world.World) error {
		w.Commands().Queue(func(*world.World) error {
			applied = true
			return nil
		})
		return nil
	})

	w := world.NewWorld()
	if err := sys.Init(w); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if err := sys.Run(w); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if applied {
		t.Error("command applied before ApplyDeferred")
	}
	if err := sys.ApplyDeferred(w); err != nil {
		t.Fatalf("ApplyDeferred error = %v", err)
	}
	if !applied {
		t.Error("ApplyDeferred did not drain the queue")
	}
}

type scoreState struct {
	score int
}

func (s *scoreState) AsAny() any    { return s }
func (s *scoreState) AsAnyMut() any { return s }

func TestFuncReceivesCommandsAndEnvironment(t *testing.T) {
	sys := Func(func(cmds *world.Commands, env world.Environment) error {
		state, ok := world.EnvAs[*scoreState](env)
		if !ok {
			// Not our environment; skip.
			return nil
		}
		cmds.Queue(func(*world.World) error {
			state.score++
			return nil
		})
		return nil
	})

	w := world.NewWorld()
	state := &scoreState{}
	w.SetEnv(state)

	if err := sys.Run(w); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if state.score != 0 {
		t.Error("mutation happened before ApplyDeferred")
	}
	if err := sys.ApplyDeferred(w); err != nil {
		t.Fatalf("ApplyDeferred error = %v", err)
	}
	if state.score != 1 {
		t.Errorf("score = %d, want 1", state.score)
	}
}

func TestFuncWrongEnvironmentIsFiltering(t *testing.T) {
	ran := false
	sys := Func(func(_ *world.Commands, env world.Environment) error {
		if _, ok := world.EnvAs[*scoreState](env); !ok {
			return nil
		}
		ran = true
		return nil
	})

	w := world.NewWorld()
	type otherState struct{ n int }
	w.SetEnv(world.Wrap(&otherState{}))

	if err := sys.Run(w); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if ran {
		t.Error("callback acted on an environment of the wrong type")
	}
}

func TestNewSystemPhaseDefaults(t *testing.T) {
	w := world.NewWorld()

	sys := NewSystem(nil, nil, nil)
	if err := sys.Init(w); err != nil {
		t.Errorf("nil init error = %v", err)
	}
	if err := sys.Run(w); err != nil {
		t.Errorf("nil run error = %v", err)
	}

	drained := false
	w.Commands().Queue(func(*world.World) error {
		drained = true
		return nil
	})
	if err := sys.ApplyDeferred(w); err != nil {
		t.Errorf("nil apply error = %v", err)
	}
	if !drained {
		t.Error("nil apply did not drain the command queue")
	}
}

func TestNewSystemCustomPhases(t *testing.T) {
	boom := errors.New("boom")
	var phases []string

	sys := NewSystem(
		func(*world.World) error { phases = append(phases, "init"); return nil },
		func(*world.World) error { phases = append(phases, "run"); return nil },
		func(*world.World) error { phases = append(phases, "apply"); return boom },
	)

	w := world.NewWorld()
	sys.Init(w)
	sys.Run(w)
	if err := sys.ApplyDeferred(w); !errors.Is(err, boom) {
		t.Errorf("ApplyDeferred error = %v, want boom", err)
	}

	want := []string{"init", "run", "apply"}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phases[%d] = %q, want %q", i, phases[i], want[i])
		}
	}
}
