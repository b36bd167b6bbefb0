package keymap

// Default returns the shortcut table installed at start-up.
func Default() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			{Keys: "Meta+E", Action: "Expand Abbreviation"},
			{Keys: "Tab", Action: "Expand Abbreviation", Description: "Only when the area enables use_tab"},
			{Keys: "Meta+D", Action: "Balance Tag Outward"},
			{Keys: "Shift+Meta+D", Action: "Balance Tag inward"},
			{Keys: "Shift+Meta+A", Action: "Wrap with Abbreviation"},
			{Keys: "Ctrl+Alt+Right", Action: "Next Edit Point"},
			{Keys: "Ctrl+Alt+Left", Action: "Previuos Edit Point"},
			{Keys: "Meta+L", Action: "Select Line"},
			{Keys: "Enter", Action: "Format Line Break", Description: "Only when the area enables pretty_break"},
		},
	}
}
