package dispatcher

// PostDispatchHook is called after every dispatch with its result.
type PostDispatchHook interface {
	PostDispatch(ev Event, result Result)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(ev Event, result Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(ev Event, result Result) {
	f(ev, result)
}
