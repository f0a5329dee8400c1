package action

import "regexp"

// CommentRemoval strips comments matched by an optional single-line pattern
// and an optional multi-line pattern.
//
// Nested block comments are not recognised: the first close marker ends the
// match. Markers inside string literals are removed like any other match.
type CommentRemoval struct {
	single *regexp.Regexp
	multi  *regexp.Regexp
}

// NewCommentRemoval returns a CommentRemoval. Either pattern may be nil.
func NewCommentRemoval(single, multi *regexp.Regexp) *CommentRemoval {
	return &CommentRemoval{single: single, multi: multi}
}

// CompileSingleLine compiles expr with ^ and $ anchored per line.
func CompileSingleLine(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?m)` + expr)
}

// CompileMultiLine compiles expr with . matching newlines.
func CompileMultiLine(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?s)` + expr)
}

// Apply removes multi-line comments first so that a block is never cut
// apart by the single-line pattern.
func (c *CommentRemoval) Apply(code string) string {
	if c.multi != nil {
		code = c.multi.ReplaceAllString(code, "")
	}
	if c.single != nil {
		code = c.single.ReplaceAllString(code, "")
	}
	return code
}

func (c *CommentRemoval) Name() string { return "CommentRemoval" }

// SingleLinePattern returns the single-line pattern source, or "".
func (c *CommentRemoval) SingleLinePattern() string {
	if c.single == nil {
		return ""
	}
	return c.single.String()
}

// MultiLinePattern returns the multi-line pattern source, or "".
func (c *CommentRemoval) MultiLinePattern() string {
	if c.multi == nil {
		return ""
	}
	return c.multi.String()
}
