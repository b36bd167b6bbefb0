package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/zenarea/internal/textarea"
)

// newAreaTable exposes a as a table of methods. Every method takes the table
// itself as its first argument so scripts use colon syntax.
func newAreaTable(L *lua.LState, a *textarea.Area) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"content": func(L *lua.LState) int {
			L.Push(lua.LString(a.Text()))
			return 1
		},
		"len": func(L *lua.LState) int {
			L.Push(lua.LNumber(a.Len()))
			return 1
		},
		"class": func(L *lua.LState) int {
			L.Push(lua.LString(a.ClassName()))
			return 1
		},
		"caret": func(L *lua.LState) int {
			L.Push(lua.LNumber(a.Caret()))
			return 1
		},
		"set_caret": func(L *lua.LState) int {
			a.SetCaret(L.CheckInt(2))
			return 0
		},
		"selection": func(L *lua.LState) int {
			sel := a.Selection()
			L.Push(lua.LNumber(sel.Start()))
			L.Push(lua.LNumber(sel.End()))
			return 2
		},
		"set_selection": func(L *lua.LState) int {
			a.SetSelection(L.CheckInt(2), L.CheckInt(3))
			return 0
		},
		"replace": func(L *lua.LState) int {
			a.Replace(L.CheckInt(2), L.CheckInt(3), L.CheckString(4))
			return 0
		},
		"line_range": func(L *lua.LState) int {
			start, end := a.LineRange(L.OptInt(2, a.Caret()))
			L.Push(lua.LNumber(start))
			L.Push(lua.LNumber(end))
			return 2
		},
		"char_at": func(L *lua.LState) int {
			pos := L.CheckInt(2)
			if pos < 0 || pos >= a.Len() {
				L.Push(lua.LString(""))
				return 1
			}
			L.Push(lua.LString(a.Slice(pos, pos+1)))
			return 1
		},
		"slice": func(L *lua.LState) int {
			L.Push(lua.LString(a.Slice(L.CheckInt(2), L.CheckInt(3))))
			return 1
		},
	})
}
