// Package action implements the text transformations that minifiers are
// assembled from. An Action is a pure function over a text buffer; the
// only state it holds is what it was constructed with.
package action

// Action transforms source text. Apply is total: it accepts any string,
// including the empty one, and never fails.
type Action interface {
	Apply(code string) string
	Name() string
}

// Named overrides the name of another action without changing what it does.
type Named struct {
	action Action
	name   string
}

// WithName wraps a so that Name reports name.
func WithName(a Action, name string) *Named {
	return &Named{action: a, name: name}
}

// Apply delegates to the wrapped action.
func (n *Named) Apply(code string) string {
	return n.action.Apply(code)
}

// Name returns the override.
func (n *Named) Name() string {
	return n.name
}

// Unwrap returns the wrapped action.
func (n *Named) Unwrap() Action {
	return n.action
}
