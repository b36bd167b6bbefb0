package dispatcher_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/dshills/zenarea/internal/dispatcher"
	"github.com/dshills/zenarea/internal/input/key"
	"github.com/dshills/zenarea/internal/options"
	"github.com/dshills/zenarea/internal/widget"
)

// recordingLibrary records every library call as "op(args)".
type recordingLibrary struct {
	calls   []string
	targets []widget.Element
	err     error
}

func (l *recordingLibrary) record(target widget.Element, format string, args ...any) error {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
	l.targets = append(l.targets, target)
	return l.err
}

func (l *recordingLibrary) ExpandAbbreviation(t widget.Element, syntax, profile string) error {
	return l.record(t, "expand(%s,%s)", syntax, profile)
}

func (l *recordingLibrary) ExpandAbbreviationWithTab(t widget.Element, syntax, profile string) error {
	return l.record(t, "expand_tab(%s,%s)", syntax, profile)
}

func (l *recordingLibrary) WrapWithAbbreviation(t widget.Element, abbr, syntax, profile string) error {
	return l.record(t, "wrap(%s,%s,%s)", abbr, syntax, profile)
}

func (l *recordingLibrary) MatchPair(t widget.Element, dir dispatcher.Direction) error {
	return l.record(t, "match(%s)", dir)
}

func (l *recordingLibrary) NextEditPoint(t widget.Element) error {
	return l.record(t, "next")
}

func (l *recordingLibrary) PrevEditPoint(t widget.Element) error {
	return l.record(t, "prev")
}

func (l *recordingLibrary) InsertFormattedNewline(t widget.Element) error {
	return l.record(t, "newline")
}

func (l *recordingLibrary) SelectLine(t widget.Element) error {
	return l.record(t, "select_line")
}

// countingElement counts ClassName reads to detect option resolution.
type countingElement struct {
	widget.Node
	classReads int
}

func (e *countingElement) ClassName() string {
	e.classReads++
	return e.Class
}

func newDispatcher(t *testing.T, store *options.Store, lib dispatcher.Library, opts ...dispatcher.Option) *dispatcher.Dispatcher {
	t.Helper()
	d, err := dispatcher.New(store, lib, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func textarea(class string) widget.Element {
	return widget.NewElement("textarea", class)
}

var (
	tabKey   = key.NewSpecialEvent(key.KeyTab, key.ModNone)
	enterKey = key.NewSpecialEvent(key.KeyEnter, key.ModNone)
	metaE    = key.NewRuneEvent('e', key.ModMeta)
)

func TestNewRequiresDependencies(t *testing.T) {
	if _, err := dispatcher.New(nil, &recordingLibrary{}); !errors.Is(err, dispatcher.ErrNilStore) {
		t.Errorf("New(nil store) error = %v, want ErrNilStore", err)
	}
	if _, err := dispatcher.New(options.NewStore(), nil); !errors.Is(err, dispatcher.ErrNilLibrary) {
		t.Errorf("New(nil library) error = %v, want ErrNilLibrary", err)
	}
}

func TestDispatchNonTextAreaPropagates(t *testing.T) {
	targets := []*countingElement{
		{Node: widget.Node{Type: widget.ElementNode, Tag: "INPUT", Class: "zc-use_tab-yes"}},
		{Node: widget.Node{Type: widget.TextNode, Tag: widget.TagTextArea}},
	}

	for _, action := range dispatcher.Actions() {
		for _, target := range targets {
			lib := &recordingLibrary{}
			d := newDispatcher(t, options.NewStore(), lib)

			result := d.Dispatch(action, dispatcher.Event{Target: target, Key: metaE})
			if result.Status != dispatcher.StatusPropagate {
				t.Errorf("%s on %s: status = %v, want propagate", action, target.Tag, result.Status)
			}
			if len(lib.calls) != 0 {
				t.Errorf("%s on %s: library called %v", action, target.Tag, lib.calls)
			}
			if target.classReads != 0 {
				t.Errorf("%s on %s: options resolved for foreign target", action, target.Tag)
			}
		}
	}
}

func TestDispatchNilTargetPropagates(t *testing.T) {
	lib := &recordingLibrary{}
	d := newDispatcher(t, options.NewStore(), lib)

	result := d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Key: metaE})
	if !result.Propagate() || len(lib.calls) != 0 {
		t.Errorf("nil target: result = %+v, calls = %v", result, lib.calls)
	}

	result = d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: (*widget.Node)(nil), Key: metaE})
	if !result.Propagate() || len(lib.calls) != 0 {
		t.Errorf("typed nil target: result = %+v, calls = %v", result, lib.calls)
	}
}

func TestDispatchLogsTargetID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lib := &recordingLibrary{}
	d := newDispatcher(t, options.NewStore(), lib, dispatcher.WithLogger(logger))

	ok := widget.NewElement("textarea", "")
	d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: ok, Key: metaE})
	lib.err = errors.New("boom")
	failing := widget.NewElement("textarea", "")
	d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: failing, Key: metaE})

	var records []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("got %d log records, want 2", len(records))
	}
	if records[0]["msg"] != "dispatched" || records[0]["target"] != ok.ID {
		t.Errorf("debug record = %v, want target %s", records[0], ok.ID)
	}
	if records[1]["msg"] != "action failed" || records[1]["target"] != failing.ID {
		t.Errorf("warn record = %v, want target %s", records[1], failing.ID)
	}
}

func TestDispatchExpandTabGating(t *testing.T) {
	tests := []struct {
		name      string
		useTab    bool
		class     string
		ev        key.Event
		wantCalls []string
		wantProp  bool
	}{
		{"tab without opt-in", false, "", tabKey, nil, true},
		{"tab with setup opt-in", true, "", tabKey, []string{"expand_tab(html,xhtml)"}, false},
		{"tab with marker opt-in", false, "zc-use_tab-yes", tabKey, []string{"expand_tab(html,xhtml)"}, false},
		{"tab with marker opt-out", true, "zc-use_tab-no", tabKey, nil, true},
		{"shift tab without opt-in", false, "", key.NewSpecialEvent(key.KeyTab, key.ModShift), nil, true},
		{"shortcut without opt-in", false, "", metaE, []string{"expand(html,xhtml)"}, false},
		{"shortcut with opt-in", true, "", metaE, []string{"expand(html,xhtml)"}, false},
	}

	for _, tt := range tests {
		store := options.NewStore()
		store.Setup(options.Options{options.UseTab: tt.useTab})
		lib := &recordingLibrary{}
		d := newDispatcher(t, store, lib)

		result := d.Dispatch(dispatcher.ActionExpandAbbreviation, dispatcher.Event{Target: textarea(tt.class), Key: tt.ev})
		if result.Propagate() != tt.wantProp {
			t.Errorf("%s: Propagate() = %v, want %v", tt.name, result.Propagate(), tt.wantProp)
		}
		if fmt.Sprint(lib.calls) != fmt.Sprint(tt.wantCalls) {
			t.Errorf("%s: calls = %v, want %v", tt.name, lib.calls, tt.wantCalls)
		}
	}
}

func TestDispatchExpandUsesResolvedSyntaxAndProfile(t *testing.T) {
	store := options.NewStore()
	store.Setup(options.Options{options.UseTab: true})
	lib := &recordingLibrary{}
	d := newDispatcher(t, store, lib)

	target := textarea("code zc-syntax-css zc-profile-plain")
	result := d.Dispatch(dispatcher.ActionExpandAbbreviation, dispatcher.Event{Target: target, Key: tabKey})

	if result.Status != dispatcher.StatusSuppress || result.Operation != dispatcher.OpExpandAbbreviationWithTab {
		t.Errorf("result = %+v, want suppressed tab expansion", result)
	}
	if len(lib.calls) != 1 || lib.calls[0] != "expand_tab(css,plain)" {
		t.Errorf("calls = %v, want [expand_tab(css,plain)]", lib.calls)
	}
	if lib.targets[0] != target {
		t.Error("library received a different target than the event's")
	}
}

func TestDispatchPrettyBreakGating(t *testing.T) {
	tests := []struct {
		name        string
		prettyBreak bool
		class       string
		ev          key.Event
		wantCalls   int
		wantProp    bool
	}{
		{"enter without opt-in", false, "", enterKey, 0, true},
		{"enter with opt-in", true, "", enterKey, 1, false},
		{"enter with marker opt-in", false, "zc-pretty_break-1", enterKey, 1, false},
		{"shortcut without opt-in", false, "", key.NewRuneEvent('b', key.ModMeta), 1, false},
	}

	for _, tt := range tests {
		for _, action := range []string{dispatcher.ActionPrettyBreak, dispatcher.ActionFormatLineBreak} {
			store := options.NewStore()
			store.Setup(options.Options{options.PrettyBreak: tt.prettyBreak})
			lib := &recordingLibrary{}
			d := newDispatcher(t, store, lib)

			result := d.Dispatch(action, dispatcher.Event{Target: textarea(tt.class), Key: tt.ev})
			if result.Propagate() != tt.wantProp {
				t.Errorf("%s/%s: Propagate() = %v, want %v", tt.name, action, result.Propagate(), tt.wantProp)
			}
			if len(lib.calls) != tt.wantCalls {
				t.Errorf("%s/%s: calls = %v, want %d", tt.name, action, lib.calls, tt.wantCalls)
			}
		}
	}
}

func TestDispatchDirectActions(t *testing.T) {
	tests := []struct {
		action string
		want   string
		op     string
	}{
		{dispatcher.ActionMatchPairInward, "match(in)", dispatcher.OpMatchPair},
		{dispatcher.ActionBalanceTagInward, "match(in)", dispatcher.OpMatchPair},
		{dispatcher.ActionMatchPairOutward, "match(out)", dispatcher.OpMatchPair},
		{dispatcher.ActionBalanceTagOutward, "match(out)", dispatcher.OpMatchPair},
		{dispatcher.ActionNextEditPoint, "next", dispatcher.OpNextEditPoint},
		{dispatcher.ActionPreviuosEditPoint, "prev", dispatcher.OpPrevEditPoint},
		{dispatcher.ActionPrevEditPoint, "prev", dispatcher.OpPrevEditPoint},
		{dispatcher.ActionPreviousEditPoint, "prev", dispatcher.OpPrevEditPoint},
		{dispatcher.ActionSelectLine, "select_line", dispatcher.OpSelectLine},
	}

	for _, tt := range tests {
		lib := &recordingLibrary{}
		d := newDispatcher(t, options.NewStore(), lib)

		// Tab and Enter do not gate these actions
		for _, ev := range []key.Event{tabKey, enterKey, metaE} {
			lib.calls = nil
			result := d.Dispatch(tt.action, dispatcher.Event{Target: textarea(""), Key: ev})
			if result.Status != dispatcher.StatusSuppress || result.Operation != tt.op {
				t.Errorf("%s via %v: result = %+v", tt.action, ev, result)
			}
			if len(lib.calls) != 1 || lib.calls[0] != tt.want {
				t.Errorf("%s via %v: calls = %v, want [%s]", tt.action, ev, lib.calls, tt.want)
			}
		}
	}
}

func TestDispatchWrapWithAbbreviation(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		ok        bool
		wantCalls []string
		wantOp    string
	}{
		{"accepted", "ul>li", true, []string{"wrap(ul>li,css,xhtml)"}, dispatcher.OpWrapWithAbbreviation},
		{"empty", "", true, nil, ""},
		{"cancelled", "div", false, nil, ""},
	}

	for _, tt := range tests {
		var gotTitle, gotDefault string
		prompt := dispatcher.PromptFunc(func(title, def string) (string, bool) {
			gotTitle, gotDefault = title, def
			return tt.answer, tt.ok
		})
		lib := &recordingLibrary{}
		d := newDispatcher(t, options.NewStore(), lib, dispatcher.WithPrompter(prompt))

		result := d.Dispatch(dispatcher.ActionWrapWithAbbreviation,
			dispatcher.Event{Target: textarea("zc-syntax-css"), Key: key.NewRuneEvent('a', key.ModShift|key.ModMeta)})

		if gotTitle != dispatcher.WrapPromptTitle || gotDefault != dispatcher.WrapPromptDefault {
			t.Errorf("%s: prompt(%q, %q)", tt.name, gotTitle, gotDefault)
		}
		if result.Status != dispatcher.StatusSuppress || result.Operation != tt.wantOp {
			t.Errorf("%s: result = %+v", tt.name, result)
		}
		if fmt.Sprint(lib.calls) != fmt.Sprint(tt.wantCalls) {
			t.Errorf("%s: calls = %v, want %v", tt.name, lib.calls, tt.wantCalls)
		}
	}
}

func TestDispatchWrapWithoutPrompterIsNoOp(t *testing.T) {
	lib := &recordingLibrary{}
	d := newDispatcher(t, options.NewStore(), lib)

	result := d.Dispatch(dispatcher.ActionWrapWithAbbreviation, dispatcher.Event{Target: textarea(""), Key: metaE})
	if result.Performed() || len(lib.calls) != 0 {
		t.Errorf("result = %+v, calls = %v; want no-op", result, lib.calls)
	}
}

func TestDispatchUnrecognized(t *testing.T) {
	lib := &recordingLibrary{}
	d := newDispatcher(t, options.NewStore(), lib)

	for _, name := range []string{"toggle_comment", "Select Line", ""} {
		result := d.Dispatch(name, dispatcher.Event{Target: textarea(""), Key: metaE})
		if result.Status != dispatcher.StatusUnrecognized {
			t.Errorf("Dispatch(%q) status = %v, want unrecognized", name, result.Status)
		}
		if result.Propagate() {
			t.Errorf("Dispatch(%q) Propagate() = true, want false", name)
		}
	}
	if len(lib.calls) != 0 {
		t.Errorf("library called for unknown actions: %v", lib.calls)
	}
}

func TestDispatchCarriesLibraryError(t *testing.T) {
	boom := errors.New("boom")
	lib := &recordingLibrary{err: boom}
	d := newDispatcher(t, options.NewStore(), lib, dispatcher.WithMetrics())

	result := d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: textarea(""), Key: metaE})
	if !errors.Is(result.Err, boom) {
		t.Errorf("Err = %v, want boom", result.Err)
	}
	if result.Status != dispatcher.StatusSuppress {
		t.Errorf("Status = %v, want suppress", result.Status)
	}
	if got := d.Metrics().TotalErrors(); got != 1 {
		t.Errorf("TotalErrors() = %d, want 1", got)
	}
}

func TestDispatchReadsCurrentBase(t *testing.T) {
	store := options.NewStore()
	lib := &recordingLibrary{}
	d := newDispatcher(t, store, lib)
	area := textarea("")

	if r := d.Dispatch(dispatcher.ActionExpandAbbreviation, dispatcher.Event{Target: area, Key: tabKey}); !r.Propagate() {
		t.Fatal("default configuration should let Tab propagate")
	}

	store.Setup(options.Options{options.UseTab: true, options.Syntax: "css"})
	if r := d.Dispatch(dispatcher.ActionExpandAbbreviation, dispatcher.Event{Target: area, Key: tabKey}); r.Propagate() {
		t.Fatal("Setup(use_tab) should make Tab expand")
	}
	if lib.calls[0] != "expand_tab(css,xhtml)" {
		t.Errorf("calls = %v", lib.calls)
	}
}

func TestPostDispatchHooks(t *testing.T) {
	d := newDispatcher(t, options.NewStore(), &recordingLibrary{})

	var seen []dispatcher.Result
	d.RegisterPostHook(dispatcher.PostDispatchFunc(func(ev dispatcher.Event, r dispatcher.Result) {
		seen = append(seen, r)
	}))

	d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: textarea(""), Key: metaE})
	d.Dispatch(dispatcher.ActionSelectLine, dispatcher.Event{Target: widget.NewText(), Key: metaE})

	if len(seen) != 2 {
		t.Fatalf("hook saw %d results, want 2", len(seen))
	}
	if seen[0].Status != dispatcher.StatusSuppress || seen[1].Status != dispatcher.StatusPropagate {
		t.Errorf("hook results = %+v", seen)
	}
}
