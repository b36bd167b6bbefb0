// Package lua implements the editing-action library in Lua.
//
// A Library owns one sandboxed gopher-lua state. At creation it runs the
// embedded default script; user scripts loaded afterwards may redefine any
// of its global functions:
//
//	expand_abbreviation(area, syntax, profile)
//	expand_abbreviation_with_tab(area, syntax, profile)
//	wrap_with_abbreviation(area, abbr, syntax, profile)
//	match_pair(area, dir)            -- dir is "in" or "out"
//	next_edit_point(area)
//	prev_edit_point(area)
//	insert_formatted_newline(area)
//	select_line(area)
//
// The area argument is a table of methods over the target text area, called
// with colon syntax. Offsets are 0-based rune indexes:
//
//	area:content()              area:len()
//	area:caret()                area:set_caret(pos)
//	area:selection()            area:set_selection(start, end)
//	area:replace(start, end, s) area:line_range([pos])
//	area:char_at(pos)           area:slice(start, end)
//	area:class()
//
// A function that returns false (optionally followed by a message) reports
// failure; any other return is success.
//
//	lib, err := lua.NewLibrary(lua.WithScriptFile("zen.lua"))
//	if err != nil {
//	    return err
//	}
//	defer lib.Close()
package lua
