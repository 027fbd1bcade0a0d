package script

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gopatterns/internal/editor/buffer"
	"github.com/dshills/gopatterns/internal/editor/history"
	"github.com/dshills/gopatterns/internal/logging"
)

// Session runs Lua editing scripts against a buffer and history.
type Session struct {
	buf    *buffer.Buffer
	hist   *history.History
	L      *lua.LState
	logger *logging.Logger
}

// NewSession creates a session bound to buf and hist. A nil logger is
// silenced. Close the session when done.
func NewSession(buf *buffer.Buffer, hist *history.History, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Nop
	}

	s := &Session{
		buf:    buf,
		hist:   hist,
		L:      lua.NewState(lua.Options{SkipOpenLibs: true}),
		logger: logger.WithComponent("script"),
	}

	s.openSafeLibs()
	s.installSafeRequire()
	s.register()
	return s
}

// openSafeLibs opens the whitelisted Lua standard libraries and strips the
// loaders that would let scripts pull in code from disk.
func (s *Session) openSafeLibs() {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		s.L.Push(s.L.NewFunction(lib.fn))
		s.L.Push(lua.LString(lib.name))
		s.L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}
}

// installSafeRequire clears the search paths the package library set up and
// replaces require with a whitelist, so scripts cannot load code from disk.
func (s *Session) installSafeRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	safe := map[string]bool{
		"string": true,
		"table":  true,
		"math":   true,
	}

	original := s.L.GetGlobal("require")
	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safe[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

// register installs the editing API.
func (s *Session) register() {
	s.L.SetGlobal("type", s.L.NewFunction(s.luaType))
	s.L.SetGlobal("delete", s.L.NewFunction(s.luaDelete))
	s.L.SetGlobal("undo", s.L.NewFunction(s.luaUndo))
	s.L.SetGlobal("content", s.L.NewFunction(s.luaContent))
	s.L.SetGlobal("history", s.L.NewFunction(s.luaHistory))
}

func (s *Session) luaType(L *lua.LState) int {
	text := L.CheckString(1)
	if err := s.hist.Run(history.NewTypeCommand(s.buf, text)); err != nil {
		L.RaiseError("type: %s", err.Error())
		return 0
	}
	s.logger.Debug("script typed %d bytes", len(text))
	return 0
}

func (s *Session) luaDelete(L *lua.LState) int {
	n := L.CheckInt(1)
	if err := s.hist.Run(history.NewDeleteCommand(s.buf, n)); err != nil {
		L.RaiseError("delete: %s", err.Error())
		return 0
	}
	s.logger.Debug("script deleted %d characters", n)
	return 0
}

func (s *Session) luaUndo(L *lua.LState) int {
	err := s.hist.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		L.Push(lua.LFalse)
		return 1
	}
	if err != nil {
		L.RaiseError("undo: %s", err.Error())
		return 0
	}
	L.Push(lua.LTrue)
	return 1
}

func (s *Session) luaContent(L *lua.LState) int {
	L.Push(lua.LString(s.buf.String()))
	return 1
}

func (s *Session) luaHistory(L *lua.LState) int {
	tbl := L.NewTable()
	for _, desc := range s.hist.Entries() {
		tbl.Append(lua.LString(desc))
	}
	L.Push(tbl)
	return 1
}

// RunFile executes a Lua script file.
func (s *Session) RunFile(path string) error {
	return s.L.DoFile(path)
}

// RunString executes Lua source.
func (s *Session) RunString(src string) error {
	return s.L.DoString(src)
}

// Close releases the Lua state.
func (s *Session) Close() {
	s.L.Close()
}
