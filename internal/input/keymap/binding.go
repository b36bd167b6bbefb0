package keymap

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key pattern that triggers this binding, e.g. "Shift+Meta+D".
	Keys string `json:"keys" yaml:"keys"`

	// Action is the action label, e.g. "Balance Tag inward". Labels are
	// normalized when bound. Empty means unbind.
	Action string `json:"action" yaml:"action"`

	// Description provides documentation for the binding.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// IsUnbind reports whether the binding removes its keys.
func (b Binding) IsUnbind() bool {
	return b.Action == ""
}
