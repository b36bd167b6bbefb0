package app

import (
	"github.com/dshills/zenarea/internal/input/key"
)

// native performs the key's ordinary editing behaviour on p.
func (a *Application) native(p *pane, ev key.Event) {
	area := p.area
	if ev.IsChar() {
		area.Insert(string(ev.Rune))
		return
	}

	switch ev.Key {
	case key.KeyTab:
		a.cycleFocus(ev.Modifiers.Has(key.ModShift))
	case key.KeyEnter:
		area.Insert("\n")
	case key.KeyBackspace:
		area.Backspace()
	case key.KeyDelete:
		area.Delete()
	case key.KeyLeft:
		area.MoveLeft()
	case key.KeyRight:
		area.MoveRight()
	case key.KeyUp:
		area.MoveUp()
	case key.KeyDown:
		area.MoveDown()
	case key.KeyHome:
		start, _ := area.LineRange(area.Caret())
		area.SetCaret(start)
	case key.KeyEnd:
		_, end := area.LineRange(area.Caret())
		area.SetCaret(end)
	}
}

func (a *Application) cycleFocus(backward bool) {
	n := len(a.panes)
	if backward {
		a.focus = (a.focus + n - 1) % n
	} else {
		a.focus = (a.focus + 1) % n
	}
	a.status = "focus: " + a.focused().title
}
