package app

import (
	"github.com/gdamore/tcell/v2"
)

// promptState is the line being edited in the status bar.
type promptState struct {
	title string
	input []rune
}

// prompt asks for a line of text in the status bar. It runs its own event
// loop and returns once the user presses Enter (accept) or Escape (cancel).
func (a *Application) prompt(title, defaultValue string) (string, bool) {
	p := &promptState{title: title, input: []rune(defaultValue)}
	a.prompting = p
	defer func() { a.prompting = nil }()

	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return "", false
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(p.input), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(p.input); n > 0 {
					p.input = p.input[:n-1]
				}
			case tcell.KeyCtrlU:
				p.input = p.input[:0]
			case tcell.KeyRune:
				p.input = append(p.input, ev.Rune())
			}
		default:
			a.handleEvent(ev)
		}
	}
}
