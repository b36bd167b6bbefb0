// Package textarea implements the plain-text area element actions edit.
//
// Offsets are rune indexes into the content, 0 <= offset <= Len(). Every
// mutator clamps its arguments into that range.
package textarea

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/zenarea/internal/widget"
)

// Area is an editable text area. It satisfies widget.Element through the
// embedded node. Area is not safe for concurrent use; hosts drive it from
// their event loop.
type Area struct {
	*widget.Node

	text []rune
	sel  Selection
}

// New creates a text area whose marker attribute is class.
func New(class, content string) *Area {
	a := &Area{Node: widget.NewElement(widget.TagTextArea, class)}
	a.SetText(content)
	return a
}

// Text returns the content.
func (a *Area) Text() string {
	return string(a.text)
}

// SetText replaces the content and puts the caret at the end.
func (a *Area) SetText(s string) {
	a.text = []rune(s)
	a.sel = Caret(len(a.text))
}

// Len returns the content length in runes.
func (a *Area) Len() int {
	return len(a.text)
}

// Slice returns the runes in [start, end) as a string.
func (a *Area) Slice(start, end int) string {
	start, end = a.order(start, end)
	return string(a.text[start:end])
}

// Caret returns the caret offset.
func (a *Area) Caret() int {
	return a.sel.Head
}

// SetCaret moves the caret and drops the selection.
func (a *Area) SetCaret(pos int) {
	a.sel = Caret(a.clamp(pos))
}

// Selection returns the current selection.
func (a *Area) Selection() Selection {
	return a.sel
}

// SetSelection selects [start, end) with the caret at end.
func (a *Area) SetSelection(start, end int) {
	start, end = a.order(start, end)
	a.sel = Selection{Anchor: start, Head: end}
}

// SelectedText returns the selected runes.
func (a *Area) SelectedText() string {
	return string(a.text[a.sel.Start():a.sel.End()])
}

// Replace substitutes [start, end) with s and leaves the caret after the
// inserted text.
func (a *Area) Replace(start, end int, s string) {
	start, end = a.order(start, end)
	ins := []rune(s)

	next := make([]rune, 0, len(a.text)-(end-start)+len(ins))
	next = append(next, a.text[:start]...)
	next = append(next, ins...)
	next = append(next, a.text[end:]...)
	a.text = next
	a.sel = Caret(start + len(ins))
}

// Insert replaces the selection (or inserts at the caret) with s.
func (a *Area) Insert(s string) {
	a.Replace(a.sel.Start(), a.sel.End(), s)
}

// Backspace deletes the selection, or the rune before the caret.
func (a *Area) Backspace() {
	if !a.sel.IsEmpty() {
		a.Insert("")
		return
	}
	if a.sel.Head > 0 {
		a.Replace(a.sel.Head-1, a.sel.Head, "")
	}
}

// Delete deletes the selection, or the rune after the caret.
func (a *Area) Delete() {
	if !a.sel.IsEmpty() {
		a.Insert("")
		return
	}
	if a.sel.Head < len(a.text) {
		pos := a.sel.Head
		a.Replace(pos, pos+1, "")
	}
}

// LineRange returns the bounds of the line containing pos, excluding the
// trailing newline.
func (a *Area) LineRange(pos int) (start, end int) {
	pos = a.clamp(pos)
	start = pos
	for start > 0 && a.text[start-1] != '\n' {
		start--
	}
	end = pos
	for end < len(a.text) && a.text[end] != '\n' {
		end++
	}
	return start, end
}

// Position returns the 0-based line and rune column of pos.
func (a *Area) Position(pos int) (line, col int) {
	pos = a.clamp(pos)
	for i := 0; i < pos; i++ {
		if a.text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// DisplayColumn returns the screen column of pos, counting wide graphemes
// as two cells.
func (a *Area) DisplayColumn(pos int) int {
	start, _ := a.LineRange(pos)
	return uniseg.StringWidth(string(a.text[start:a.clamp(pos)]))
}

// Lines returns the content split on newlines.
func (a *Area) Lines() []string {
	return strings.Split(string(a.text), "\n")
}

// MoveLeft moves the caret one rune back, or to the start of the selection.
func (a *Area) MoveLeft() {
	if !a.sel.IsEmpty() {
		a.SetCaret(a.sel.Start())
		return
	}
	a.SetCaret(a.sel.Head - 1)
}

// MoveRight moves the caret one rune forward, or to the end of the selection.
func (a *Area) MoveRight() {
	if !a.sel.IsEmpty() {
		a.SetCaret(a.sel.End())
		return
	}
	a.SetCaret(a.sel.Head + 1)
}

// MoveUp moves the caret to the same display column on the previous line.
func (a *Area) MoveUp() {
	start, _ := a.LineRange(a.sel.Head)
	if start == 0 {
		a.SetCaret(0)
		return
	}
	a.moveToLine(start-1, a.DisplayColumn(a.sel.Head))
}

// MoveDown moves the caret to the same display column on the next line.
func (a *Area) MoveDown() {
	_, end := a.LineRange(a.sel.Head)
	if end == len(a.text) {
		a.SetCaret(end)
		return
	}
	a.moveToLine(end+1, a.DisplayColumn(a.sel.Head))
}

// moveToLine places the caret on the line containing pos at the last
// grapheme boundary not past column.
func (a *Area) moveToLine(pos, column int) {
	start, end := a.LineRange(pos)
	offset, width := start, 0

	g := uniseg.NewGraphemes(string(a.text[start:end]))
	for g.Next() {
		w := g.Width()
		if width+w > column {
			break
		}
		width += w
		offset += len(g.Runes())
	}
	a.SetCaret(offset)
}

func (a *Area) clamp(pos int) int {
	return max(0, min(pos, len(a.text)))
}

func (a *Area) order(start, end int) (int, int) {
	start, end = a.clamp(start), a.clamp(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}
