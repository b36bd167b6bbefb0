package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyTab, "Tab"},
		{KeyEnter, "Enter"},
		{KeyRight, "Right"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Tab", KeyTab},
		{"tab", KeyTab},
		{" ENTER ", KeyEnter},
		{"return", KeyEnter},
		{"esc", KeyEscape},
		{"PgDn", KeyPageDown},
		{"left", KeyLeft},
		{"f5", KeyF5},
		{"bogus", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassifies Left/Home")
	}
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() || !KeyTab.IsSpecial() {
		t.Error("IsSpecial misclassifies Rune/None/Tab")
	}
}
