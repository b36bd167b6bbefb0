package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/zenarea/internal/textarea"
)

const tabWidth = 4

var (
	styleText         = tcell.StyleDefault
	styleSelection    = tcell.StyleDefault.Reverse(true)
	styleTitle        = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleFocusedTitle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
	styleStatus       = tcell.StyleDefault.Reverse(true)
)

// draw renders the panes and the status line.
func (a *Application) draw() {
	s := a.screen
	s.Clear()
	s.HideCursor()

	width, height := s.Size()
	if height < 3 || width < 1 {
		s.Show()
		return
	}

	body := height - 1
	editorHeight := body * 2 / 3
	if editorHeight < 2 {
		editorHeight = 2
	}
	a.drawPane(0, 0, editorHeight, width)
	a.drawPane(1, editorHeight, body-editorHeight, width)
	a.drawStatus(height-1, width)
	s.Show()
}

func (a *Application) drawPane(index, y, height, width int) {
	if height <= 0 {
		return
	}
	p := a.panes[index]
	focused := index == a.focus && a.prompting == nil

	title := styleTitle
	if index == a.focus {
		title = styleFocusedTitle
	}
	a.fill(y, width, title)
	header := fmt.Sprintf(" %s <%s class=%q> %s", p.title, strings.ToLower(p.area.Tag), p.area.Class, p.area.Selection())
	a.drawText(0, y, width, header, title)

	rows := height - 1
	if rows <= 0 {
		return
	}

	area := p.area
	caret := area.Caret()
	line, _ := area.Position(caret)
	if line < p.top {
		p.top = line
	}
	if line >= p.top+rows {
		p.top = line - rows + 1
	}

	sel := area.Selection()
	offset := 0
	for i, text := range area.Lines() {
		if i >= p.top+rows {
			break
		}
		if i >= p.top {
			row := y + 1 + i - p.top
			x, ok := a.drawLine(text, offset, row, width, sel, caret)
			if ok && focused && x < width {
				a.screen.ShowCursor(x, row)
			}
		}
		offset += utf8.RuneCountInString(text) + 1
	}
}

// drawLine draws one line of an area starting at rune offset. It returns
// the screen column of caret when the caret lies on this line.
func (a *Application) drawLine(text string, offset, row, width int, sel textarea.Selection, caret int) (int, bool) {
	x, pos := 0, offset
	cursor, found := 0, caret == pos

	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)

		style := styleText
		if sel.Contains(pos) {
			style = styleSelection
		}

		switch {
		case runes[0] == '\t':
			w = tabWidth - x%tabWidth
			for i := 0; i < w && x+i < width; i++ {
				a.screen.SetContent(x+i, row, ' ', nil, style)
			}
		default:
			if w < 1 {
				w = 1
			}
			if x+w <= width {
				a.screen.SetContent(x, row, runes[0], runes[1:], style)
			}
		}

		x += w
		pos += len(runes)
		if pos == caret {
			cursor, found = x, true
		}
	}
	return cursor, found
}

func (a *Application) drawStatus(y, width int) {
	a.fill(y, width, styleStatus)
	if p := a.prompting; p != nil {
		line := p.title + ": " + string(p.input)
		a.drawText(0, y, width, line, styleStatus)
		if x := uniseg.StringWidth(line); x < width {
			a.screen.ShowCursor(x, y)
		}
		return
	}
	a.drawText(0, y, width, a.status, styleStatus)
}

func (a *Application) fill(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText draws s from column x, clipped at width.
func (a *Application) drawText(x, y, width int, s string, style tcell.Style) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w < 1 {
			continue
		}
		if x+w > width {
			return
		}
		a.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
