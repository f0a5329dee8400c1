package language

import "minifykit/internal/action"

// PythonOptions are the toggles of the Python minifier.
type PythonOptions struct {
	PreserveNewlines   bool
	PreserveDocstrings bool
}

// DefaultPythonOptions keeps line structure and strips docstrings.
func DefaultPythonOptions() PythonOptions {
	return PythonOptions{PreserveNewlines: true}
}

// Python minifies Python source.
type Python struct {
	opts     PythonOptions
	pipeline *action.Composite
}

func NewPython(opts PythonOptions) *Python {
	return &Python{opts: opts, pipeline: buildPythonPipeline(opts)}
}

func (p *Python) Name() string         { return "python" }
func (p *Python) Extensions() []string { return []string{".py"} }

func (p *Python) Minify(code string) string {
	return p.pipeline.Apply(code)
}

func (p *Python) Options() PythonOptions { return p.opts }

// Pipeline returns the composite currently in use.
func (p *Python) Pipeline() *action.Composite { return p.pipeline }

func (p *Python) SetPreserveNewlines(preserve bool) {
	if p.opts.PreserveNewlines == preserve {
		return
	}
	p.opts.PreserveNewlines = preserve
	p.pipeline = buildPythonPipeline(p.opts)
}

func (p *Python) SetPreserveDocstrings(preserve bool) {
	if p.opts.PreserveDocstrings == preserve {
		return
	}
	p.opts.PreserveDocstrings = preserve
	p.pipeline = buildPythonPipeline(p.opts)
}

// Triple-quoted blocks are treated as comments unless docstrings are kept.
// Operator spacing is only touched once the line structure is gone.
func buildPythonPipeline(opts PythonOptions) *action.Composite {
	comments := action.NewCommentRemoval(hashComment, tripleQuoted)
	if opts.PreserveDocstrings {
		comments = action.NewCommentRemoval(hashComment, nil)
	}

	c := action.NewComposite(
		comments,
		action.NewWhitespaceReduction(opts.PreserveNewlines),
		action.NewEmptyLineRemoval(),
	)
	if !opts.PreserveNewlines {
		c.Add(action.NewOperatorSpaceRemoval())
	}
	return c
}
