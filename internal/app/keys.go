package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/zenarea/internal/input/key"
)

// specialKeys maps tcell's named keys. Tab, Enter and Backspace share codes
// with Ctrl+I, Ctrl+M and Ctrl+H, so this table is consulted before the
// control-letter range.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey converts a tcell key event. The second result is false for
// keys with no counterpart.
func convertKey(ev *tcell.EventKey, altAsMeta bool) (key.Event, bool) {
	mods := convertMod(ev.Modifiers(), altAsMeta)
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	if k == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewSpecialEvent(key.KeySpace, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertMod converts tcell modifiers. Terminals rarely deliver Meta, so
// altAsMeta lets the Alt key stand in for it. Ctrl+Alt chords keep their Alt.
func convertMod(m tcell.ModMask, altAsMeta bool) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	if m&tcell.ModAlt != 0 {
		if altAsMeta && m&tcell.ModCtrl == 0 {
			mods = mods.With(key.ModMeta)
		} else {
			mods = mods.With(key.ModAlt)
		}
	}
	return mods
}
