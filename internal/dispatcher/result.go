package dispatcher

// Status tells the host what to do with the native key action.
type Status uint8

const (
	// StatusSuppress means the dispatcher consumed the key.
	StatusSuppress Status = iota
	// StatusPropagate means the host should run its native key behaviour.
	StatusPropagate
	// StatusUnrecognized means the action name is not known. Hosts treat it
	// like StatusSuppress unless they decide otherwise.
	StatusUnrecognized
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuppress:
		return "suppress"
	case StatusPropagate:
		return "propagate"
	case StatusUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Result is the outcome of one dispatch.
type Result struct {
	// Status decides the fate of the native key action.
	Status Status

	// Action is the canonical action name dispatched.
	Action string

	// Operation names the library operation run, empty when none ran.
	Operation string

	// Err is the library error, if the operation failed.
	Err error
}

// Propagate reports whether the native key action should run.
func (r Result) Propagate() bool {
	return r.Status == StatusPropagate
}

// Performed reports whether a library operation ran.
func (r Result) Performed() bool {
	return r.Operation != ""
}

// Propagated creates a result letting the native key action run.
func Propagated(action string) Result {
	return Result{Status: StatusPropagate, Action: action}
}

// Suppressed creates a result for a consumed key. op may be empty when the
// action ended without touching the library, e.g. a cancelled prompt.
func Suppressed(action, op string) Result {
	return Result{Status: StatusSuppress, Action: action, Operation: op}
}

// Unrecognized creates a result for an unknown action name.
func Unrecognized(action string) Result {
	return Result{Status: StatusUnrecognized, Action: action}
}
