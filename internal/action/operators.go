package action

import (
	"regexp"
	"strings"
)

// DefaultOperatorPatterns are the patterns used by OperatorSpaceRemoval when
// none are given: parentheses, braces, brackets, then operators and
// punctuation.
var DefaultOperatorPatterns = []string{
	`\s*([()])\s*`,
	`\s*([{}])\s*`,
	`\s*([\[\]])\s*`,
	`\s*([+%\-*/=<>!&|:,])\s*`,
}

var defaultOperatorRegexps = mustCompileAll(DefaultOperatorPatterns)

// OperatorSpaceRemoval strips whitespace around operators and punctuation.
//
// Each pattern is a separate substitution pass over the whole text, run in
// list order. A match is replaced by its first capture group, or by the
// match with surrounding whitespace trimmed when the pattern has no group.
// Patterns that can match overlapping spans are order-sensitive and the
// result is not guaranteed to be a fixed point.
type OperatorSpaceRemoval struct {
	patterns []*regexp.Regexp
}

// NewOperatorSpaceRemoval returns an OperatorSpaceRemoval using patterns, or
// the default patterns when none are given.
func NewOperatorSpaceRemoval(patterns ...*regexp.Regexp) *OperatorSpaceRemoval {
	if len(patterns) == 0 {
		patterns = defaultOperatorRegexps
	}
	return &OperatorSpaceRemoval{patterns: patterns}
}

func (o *OperatorSpaceRemoval) Apply(code string) string {
	for _, re := range o.patterns {
		if re.NumSubexp() > 0 {
			code = re.ReplaceAllString(code, "${1}")
			continue
		}
		code = re.ReplaceAllStringFunc(code, strings.TrimSpace)
	}
	return code
}

func (o *OperatorSpaceRemoval) Name() string { return "OperatorSpaceRemoval" }

// Patterns returns the pattern sources in application order.
func (o *OperatorSpaceRemoval) Patterns() []string {
	out := make([]string, len(o.patterns))
	for i, re := range o.patterns {
		out[i] = re.String()
	}
	return out
}

func mustCompileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		out[i] = regexp.MustCompile(expr)
	}
	return out
}
