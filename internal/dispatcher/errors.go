package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNilStore indicates the dispatcher was built without an options store.
	ErrNilStore = errors.New("dispatcher: nil options store")

	// ErrNilLibrary indicates the dispatcher was built without an action library.
	ErrNilLibrary = errors.New("dispatcher: nil action library")
)
