package language

import "minifykit/internal/action"

// CSS minifies stylesheets. It has no toggles: output is always a single
// line with punctuation spacing removed.
type CSS struct {
	pipeline *action.Composite
}

func NewCSS() *CSS {
	return &CSS{pipeline: action.NewComposite(
		action.NewCommentRemoval(nil, blockComment),
		action.NewWhitespaceReduction(false),
		action.NewEmptyLineRemoval(),
		action.NewOperatorSpaceRemoval(),
	)}
}

func (c *CSS) Name() string         { return "css" }
func (c *CSS) Extensions() []string { return []string{".css"} }

func (c *CSS) Minify(code string) string {
	return c.pipeline.Apply(code)
}

func (c *CSS) Pipeline() *action.Composite { return c.pipeline }
