package action

import "strings"

// Composite applies a sequence of actions, feeding each one the output of
// the previous. It is itself an Action and can be nested.
//
// Add must not be called once the composite is shared between goroutines.
type Composite struct {
	actions []Action
}

// NewComposite returns a composite running actions in the given order.
func NewComposite(actions ...Action) *Composite {
	c := &Composite{actions: make([]Action, 0, len(actions))}
	c.actions = append(c.actions, actions...)
	return c
}

// Add appends a to the end of the chain.
func (c *Composite) Add(a Action) {
	c.actions = append(c.actions, a)
}

// Apply runs every action in order. An empty composite returns code as is.
func (c *Composite) Apply(code string) string {
	for _, a := range c.actions {
		code = a.Apply(code)
	}
	return code
}

// Name is "Composite(" followed by the child names joined with "+".
func (c *Composite) Name() string {
	names := make([]string, len(c.actions))
	for i, a := range c.actions {
		names[i] = a.Name()
	}
	return "Composite(" + strings.Join(names, "+") + ")"
}

// Actions returns a copy of the chain.
func (c *Composite) Actions() []Action {
	out := make([]Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// Len returns the number of actions in the chain.
func (c *Composite) Len() int {
	return len(c.actions)
}
