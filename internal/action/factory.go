package action

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies one of the basic actions.
type Kind string

const (
	KindWhitespace  Kind = "whitespace"
	KindComments    Kind = "comments"
	KindEmptyLines  Kind = "empty_lines"
	KindOperators   Kind = "operators"
	KindLineJoining Kind = "line_joining"
)

var (
	// ErrUnknownKind is returned by New for an unrecognised kind.
	ErrUnknownKind = errors.New("unknown action kind")

	// ErrInvalidPattern is returned by New when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// UnknownKindError carries the kind that New could not resolve.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown action kind: %q (available: %s)", string(e.Kind), strings.Join(kindNames(), ", "))
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// Params holds the optional parameters for New. Fields that do not apply
// to the requested kind are ignored.
type Params struct {
	// comments
	SingleLinePattern string
	MultiLinePattern  string

	// whitespace
	PreserveNewlines bool

	// operators; empty means DefaultOperatorPatterns
	Patterns []string

	// line_joining; empty means DefaultSeparator
	Separator string
}

type constructor func(p Params) (Action, error)

var constructors = map[Kind]constructor{
	KindWhitespace: func(p Params) (Action, error) {
		return NewWhitespaceReduction(p.PreserveNewlines), nil
	},
	KindComments: func(p Params) (Action, error) {
		var single, multi *regexp.Regexp
		var err error
		if p.SingleLinePattern != "" {
			if single, err = CompileSingleLine(p.SingleLinePattern); err != nil {
				return nil, fmt.Errorf("%w: single-line %q: %v", ErrInvalidPattern, p.SingleLinePattern, err)
			}
		}
		if p.MultiLinePattern != "" {
			if multi, err = CompileMultiLine(p.MultiLinePattern); err != nil {
				return nil, fmt.Errorf("%w: multi-line %q: %v", ErrInvalidPattern, p.MultiLinePattern, err)
			}
		}
		return NewCommentRemoval(single, multi), nil
	},
	KindEmptyLines: func(Params) (Action, error) {
		return NewEmptyLineRemoval(), nil
	},
	KindOperators: func(p Params) (Action, error) {
		patterns := make([]*regexp.Regexp, 0, len(p.Patterns))
		for _, expr := range p.Patterns {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: operator %q: %v", ErrInvalidPattern, expr, err)
			}
			patterns = append(patterns, re)
		}
		return NewOperatorSpaceRemoval(patterns...), nil
	},
	KindLineJoining: func(p Params) (Action, error) {
		sep := p.Separator
		if sep == "" {
			sep = DefaultSeparator
		}
		return NewLineJoining(sep), nil
	},
}

// New builds the action identified by kind. When name is not empty the
// action is wrapped so that Name reports it.
func New(kind Kind, name string, p Params) (Action, error) {
	build, ok := constructors[kind]
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}

	a, err := build(p)
	if err != nil {
		return nil, err
	}

	if name != "" {
		return WithName(a, name), nil
	}
	return a, nil
}

// Kinds returns the supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindWhitespace, KindComments, KindEmptyLines, KindOperators, KindLineJoining}
}

func kindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
