package language

import "minifykit/internal/action"

// Custom is a minifier assembled from an explicit list of actions, for
// languages without a built-in profile.
//
// Unlike the built-in minifiers it does not cache a pipeline: every call to
// Minify chains the actions currently in its list, so replacing an element
// of the slice passed to NewCustom is visible on the next call.
type Custom struct {
	name       string
	extensions []string
	actions    []action.Action
}

// NewCustom returns a minifier called name for extensions, running actions
// in order. The actions slice is kept, not copied.
func NewCustom(name string, extensions []string, actions []action.Action) *Custom {
	return &Custom{name: name, extensions: copyStrings(extensions), actions: actions}
}

func (c *Custom) Name() string         { return c.name }
func (c *Custom) Extensions() []string { return copyStrings(c.extensions) }

// Add appends a to the list used by later Minify calls.
func (c *Custom) Add(a action.Action) {
	c.actions = append(c.actions, a)
}

// Minify runs a fresh composite of the current actions.
func (c *Custom) Minify(code string) string {
	return action.NewComposite(c.actions...).Apply(code)
}
