// Package key describes keystrokes and the patterns shortcuts are bound to.
//
// The package defines:
//
//   - Key: a keyboard key (special keys, function keys, or runes)
//   - Modifier: the modifier set held during a keystroke (Ctrl, Alt, Shift, Meta)
//   - Event: one key press as delivered by a host
//   - Pattern: the platform-neutral key combination a shortcut is bound to
//
// # Pattern Specifications
//
// Patterns are written as modifier names joined with "+" followed by a key:
//
//   - Single keys: "Tab", "Enter", "F5", "e"
//   - With modifiers: "Meta+E", "Shift+Meta+D", "Ctrl+Alt+Right"
//
// Modifier names accept common aliases (Control, Option, Cmd, Super). Letter keys
// are case-folded, so "Meta+E" and "meta+e" describe the same pattern. Shift has
// to be spelled out.
package key
