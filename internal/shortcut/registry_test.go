package shortcut_test

import (
	"errors"
	"testing"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/input/keymap"
	"github.com/dshills/zenarea/internal/recognizer"
	"github.com/dshills/zenarea/internal/shortcut"
)

// fakeDispatcher records dispatched names and answers with want.
type fakeDispatcher struct {
	names []string
	want  dispatcher.Result
}

func (d *fakeDispatcher) Dispatch(name string, ev dispatcher.Event) dispatcher.Result {
	d.names = append(d.names, name)
	r := d.want
	r.Action = name
	return r
}

func newRegistry(t *testing.T) (*shortcut.Registry, *recognizer.Recognizer, *fakeDispatcher) {
	t.Helper()
	rec := recognizer.New()
	d := &fakeDispatcher{want: dispatcher.Suppressed("", "op")}
	reg, err := shortcut.NewRegistry(rec, d)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg, rec, d
}

func TestNewRegistryErrors(t *testing.T) {
	if _, err := shortcut.NewRegistry(nil, &fakeDispatcher{}); !errors.Is(err, shortcut.ErrNilRecognizer) {
		t.Errorf("NewRegistry(nil, d) error = %v, want ErrNilRecognizer", err)
	}
	if _, err := shortcut.NewRegistry(recognizer.New(), nil); !errors.Is(err, shortcut.ErrNilDispatcher) {
		t.Errorf("NewRegistry(rec, nil) error = %v, want ErrNilDispatcher", err)
	}
}

func TestBindNormalizesLabel(t *testing.T) {
	reg, rec, d := newRegistry(t)
	if err := reg.Bind("Meta+D", "  Balance   Tag Outward "); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	res, ok := rec.Handle(key.NewRuneEvent('d', key.ModMeta), nil)
	if !ok {
		t.Fatal("Meta+D not registered with recognizer")
	}
	if len(d.names) != 1 || d.names[0] != "balance_tag_outward" {
		t.Errorf("dispatched %v, want [balance_tag_outward]", d.names)
	}
	if res.Action != "balance_tag_outward" || res.Operation != "op" {
		t.Errorf("handler returned %+v, want dispatcher result verbatim", res)
	}
}

func TestBindInvalidPattern(t *testing.T) {
	reg, rec, _ := newRegistry(t)
	err := reg.Bind("Hyper+X", "Select Line")
	if !errors.Is(err, key.ErrInvalidPattern) {
		t.Errorf("Bind(Hyper+X) error = %v, want ErrInvalidPattern", err)
	}
	if rec.Len() != 0 {
		t.Errorf("recognizer has %d patterns after failed Bind", rec.Len())
	}
}

func TestBindLastWins(t *testing.T) {
	reg, rec, d := newRegistry(t)
	_ = reg.Bind("Meta+E", "Expand Abbreviation")
	_ = reg.Bind("meta+e", "Select Line")

	rec.Handle(key.NewRuneEvent('e', key.ModMeta), nil)
	if len(d.names) != 1 || d.names[0] != "select_line" {
		t.Errorf("dispatched %v, want [select_line]", d.names)
	}
	if n := len(reg.Bindings()); n != 1 {
		t.Errorf("Bindings() has %d entries, want 1", n)
	}
}

func TestUnbind(t *testing.T) {
	reg, rec, _ := newRegistry(t)
	_ = reg.Bind("Meta+L", "Select Line")

	reg.Unbind("Meta+L")
	reg.Unbind("Meta+L")
	reg.Unbind("Ctrl+Alt+Up")
	reg.Unbind("not a pattern+")

	if _, ok := rec.Handle(key.NewRuneEvent('l', key.ModMeta), nil); ok {
		t.Error("Meta+L still handled after Unbind")
	}
	if _, ok := reg.Lookup("Meta+L"); ok {
		t.Error("Lookup(Meta+L) found unbound pattern")
	}
}

func TestInstallDefaults(t *testing.T) {
	reg, rec, _ := newRegistry(t)
	if err := reg.InstallDefaults(); err != nil {
		t.Fatalf("InstallDefaults() error = %v", err)
	}

	tests := []struct {
		pattern string
		want    string
	}{
		{"Meta+E", "expand_abbreviation"},
		{"Tab", "expand_abbreviation"},
		{"Meta+D", "balance_tag_outward"},
		{"Shift+Meta+D", "balance_tag_inward"},
		{"Shift+Meta+A", "wrap_with_abbreviation"},
		{"Ctrl+Alt+Right", "next_edit_point"},
		{"Ctrl+Alt+Left", "previuos_edit_point"},
		{"Meta+L", "select_line"},
		{"Enter", "format_line_break"},
	}
	for _, tt := range tests {
		got, ok := reg.Lookup(tt.pattern)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", tt.pattern, got, ok, tt.want)
		}
		if !dispatcher.IsRecognized(got) {
			t.Errorf("default action %q is not recognized by the dispatcher", got)
		}
	}
	if rec.Len() != len(tests) {
		t.Errorf("recognizer has %d patterns, want %d", rec.Len(), len(tests))
	}
}

func TestBindingsSorted(t *testing.T) {
	reg, _, _ := newRegistry(t)
	_ = reg.Bind("Tab", "Expand Abbreviation")
	_ = reg.Bind("Meta+L", "Select Line")
	_ = reg.Bind("Enter", "Format Line Break")

	got := reg.Bindings()
	want := []keymap.Binding{
		{Keys: "Enter", Action: "format_line_break"},
		{Keys: "Meta+L", Action: "select_line"},
		{Keys: "Tab", Action: "expand_abbreviation"},
	}
	if len(got) != len(want) {
		t.Fatalf("Bindings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bindings()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	km := reg.Keymap("active")
	if km.Name != "active" || len(km.Bindings) != 3 {
		t.Errorf("Keymap() = %+v", km)
	}
}

func TestApplyUnbindsEmptyActions(t *testing.T) {
	reg, _, _ := newRegistry(t)
	if err := reg.InstallDefaults(); err != nil {
		t.Fatal(err)
	}

	km := keymap.NewKeymap("user").
		Add("Tab", "").
		Add("Ctrl+Alt+Up", "Match Pair Outward")
	if err := reg.Apply(km); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if _, ok := reg.Lookup("Tab"); ok {
		t.Error("Tab still bound after empty action")
	}
	if got, _ := reg.Lookup("Ctrl+Alt+Up"); got != "match_pair_outward" {
		t.Errorf("Lookup(Ctrl+Alt+Up) = %q, want match_pair_outward", got)
	}

	bad := keymap.NewKeymap("bad").Add("Hyper+Z", "Select Line")
	if err := reg.Apply(bad); err == nil {
		t.Error("Apply(invalid) error = nil")
	}
}
