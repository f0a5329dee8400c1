package language

import "minifykit/internal/action"

// JavaScriptOptions are the toggles of the JavaScript minifier.
type JavaScriptOptions struct {
	PreserveNewlines bool
	// Aggressive strips spaces around operators even when newlines are kept.
	Aggressive bool
}

func DefaultJavaScriptOptions() JavaScriptOptions {
	return JavaScriptOptions{PreserveNewlines: true}
}

// JavaScript minifies JavaScript source.
type JavaScript struct {
	opts     JavaScriptOptions
	pipeline *action.Composite
}

func NewJavaScript(opts JavaScriptOptions) *JavaScript {
	return &JavaScript{opts: opts, pipeline: buildJavaScriptPipeline(opts)}
}

func (j *JavaScript) Name() string         { return "javascript" }
func (j *JavaScript) Extensions() []string { return []string{".js"} }

func (j *JavaScript) Minify(code string) string {
	return j.pipeline.Apply(code)
}

func (j *JavaScript) Options() JavaScriptOptions  { return j.opts }
func (j *JavaScript) Pipeline() *action.Composite { return j.pipeline }

func (j *JavaScript) SetPreserveNewlines(preserve bool) {
	if j.opts.PreserveNewlines == preserve {
		return
	}
	j.opts.PreserveNewlines = preserve
	j.pipeline = buildJavaScriptPipeline(j.opts)
}

func (j *JavaScript) SetAggressive(aggressive bool) {
	if j.opts.Aggressive == aggressive {
		return
	}
	j.opts.Aggressive = aggressive
	j.pipeline = buildJavaScriptPipeline(j.opts)
}

func buildJavaScriptPipeline(opts JavaScriptOptions) *action.Composite {
	c := action.NewComposite(
		action.NewCommentRemoval(slashComment, blockComment),
		action.NewWhitespaceReduction(opts.PreserveNewlines),
		action.NewEmptyLineRemoval(),
	)
	if opts.Aggressive || !opts.PreserveNewlines {
		c.Add(action.NewOperatorSpaceRemoval())
	}
	return c
}
