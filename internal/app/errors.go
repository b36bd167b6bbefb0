package app

import "errors"

// Application errors.
var (
	// ErrInitialization indicates an initialization failure.
	ErrInitialization = errors.New("initialization failed")

	// ErrNoScreen indicates New was given no screen.
	ErrNoScreen = errors.New("no screen")
)
