// Package keymap holds shortcut tables: which key pattern triggers which action.
//
// A Keymap is plain data. The shortcut registry turns it into live bindings;
// this package only builds, validates, loads and saves tables.
//
// # File Formats
//
// JSON and YAML keymap files share one shape:
//
//	{
//	  "name": "user",
//	  "bindings": [
//	    {"keys": "Ctrl+E", "action": "Expand Abbreviation"},
//	    {"keys": "Tab", "action": ""}
//	  ]
//	}
//
// An empty action means "remove whatever is bound to these keys".
package keymap
