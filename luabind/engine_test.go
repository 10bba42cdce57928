package luabind

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestLoadString(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	if err := e.LoadString("x = 41 + 1"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}

	if got := e.Global("x"); got != lua.LNumber(42) {
		t.Errorf("Global(x) = %v, want 42", got)
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	if err := e.LoadString("this is not lua"); err == nil {
		t.Fatal("LoadString with invalid source returned nil error")
	}
}

func TestLoadFile(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	path := filepath.Join(t.TempDir(), "script.lua")
	script := "function greet()\n  greeting = 'hello'\nend\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	if err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile error = %v", err)
	}
	if !e.hasFunction("greet") {
		t.Error("greet should be defined after LoadFile")
	}
}

func TestLoadFileMissing(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	if err := e.LoadFile(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Fatal("LoadFile on missing file returned nil error")
	}
}

func TestRegisterModule(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	e.RegisterModule("calc", map[string]lua.LGFunction{
		"add": func(L *lua.LState) int {
			a := L.CheckNumber(1)
			b := L.CheckNumber(2)
			L.Push(a + b)
			return 1
		},
	})

	if err := e.LoadString("result = calc.add(2, 3)"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if got := e.Global("result"); got != lua.LNumber(5) {
		t.Errorf("Global(result) = %v, want 5", got)
	}
}

func TestRegisterFunc(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	called := false
	e.RegisterFunc("notify", func(L *lua.LState) int {
		called = true
		return 0
	})

	if err := e.LoadString("notify()"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if !called {
		t.Error("registered function was not called")
	}
}

func TestSetGlobal(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	e.SetGlobal("speed", lua.LNumber(7))
	if err := e.LoadString("double = speed * 2"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if got := e.Global("double"); got != lua.LNumber(14) {
		t.Errorf("Global(double) = %v, want 14", got)
	}
}

func TestSandboxedHidesUnsafeLibraries(t *testing.T) {
	e := NewEngine(Sandboxed())
	defer e.Close()

	if err := e.LoadString("ok = (os == nil) and (io == nil) and (debug == nil)"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if got := e.Global("ok"); got != lua.LTrue {
		t.Errorf("sandboxed globals check = %v, want true", got)
	}
}

func TestSandboxedKeepsSafeLibraries(t *testing.T) {
	e := NewEngine(Sandboxed())
	defer e.Close()

	script := "ok = (string.upper('a') == 'A') and (math.max(1, 2) == 2) and (#({1, 2}) == 2)"
	if err := e.LoadString(script); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if got := e.Global("ok"); got != lua.LTrue {
		t.Errorf("safe library check = %v, want true", got)
	}
}

func TestDefaultStateHasFullLibraries(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	if err := e.LoadString("ok = os ~= nil"); err != nil {
		t.Fatalf("LoadString error = %v", err)
	}
	if got := e.Global("ok"); got != lua.LTrue {
		t.Errorf("os check = %v, want true", got)
	}
}

func TestEngineClosed(t *testing.T) {
	e := NewEngine()
	e.Close()
	e.Close() // idempotent

	if err := e.LoadString("x = 1"); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("LoadString after Close error = %v, want ErrEngineClosed", err)
	}
	if got := e.Global("x"); got != lua.LNil {
		t.Errorf("Global after Close = %v, want nil", got)
	}
	if e.hasFunction("print") {
		t.Error("hasFunction after Close should report false")
	}
}
