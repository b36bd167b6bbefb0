// Package dispatcher routes named editing actions to an action library.
//
// The dispatcher sits between the shortcut registry and the editing-action
// library. Every dispatch:
//
//  1. Rejects events whose target is not a text area (the key proceeds natively)
//  2. Resolves options for the target from the base configuration and the
//     target's marker attribute
//  3. Runs at most one library operation, gating Tab and Enter triggered
//     actions on the use_tab and pretty_break options
//  4. Returns a Result telling the caller whether the native key action
//     should be suppressed
//
// # Action Names
//
// Labels are normalized before routing: "  Expand   Abbreviation " becomes
// "expand_abbreviation". The recognized set is fixed; see Actions.
//
// # Usage
//
//	store := options.NewStore()
//	d := dispatcher.New(store, library, dispatcher.WithPrompter(prompter))
//
//	result := d.Dispatch(dispatcher.Normalize("Select Line"), dispatcher.Event{
//	    Target: area,
//	    Key:    key.NewRuneEvent('l', key.ModMeta),
//	})
//	if result.Propagate() {
//	    // let the host handle the key
//	}
package dispatcher
