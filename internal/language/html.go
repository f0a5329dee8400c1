package language

import "minifykit/internal/action"

// HTMLOptions are the toggles of the HTML minifier.
type HTMLOptions struct {
	PreserveNewlines bool
}

func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{PreserveNewlines: true}
}

// HTML minifies markup. Besides <!-- --> comments it strips C-style
// comments left in inline scripts and styles. A // comment is only removed
// when preceded by whitespace or at the start of a line, so URLs such as
// https://example.com survive. Operator spacing is never touched.
type HTML struct {
	opts     HTMLOptions
	pipeline *action.Composite
}

func NewHTML(opts HTMLOptions) *HTML {
	return &HTML{opts: opts, pipeline: buildHTMLPipeline(opts)}
}

func (h *HTML) Name() string         { return "html" }
func (h *HTML) Extensions() []string { return []string{".html", ".htm"} }

func (h *HTML) Minify(code string) string {
	return h.pipeline.Apply(code)
}

func (h *HTML) Options() HTMLOptions        { return h.opts }
func (h *HTML) Pipeline() *action.Composite { return h.pipeline }

func (h *HTML) SetPreserveNewlines(preserve bool) {
	if h.opts.PreserveNewlines == preserve {
		return
	}
	h.opts.PreserveNewlines = preserve
	h.pipeline = buildHTMLPipeline(h.opts)
}

func buildHTMLPipeline(opts HTMLOptions) *action.Composite {
	return action.NewComposite(
		action.NewCommentRemoval(embeddedComment, markupComment),
		action.NewWhitespaceReduction(opts.PreserveNewlines),
		action.NewEmptyLineRemoval(),
	)
}
