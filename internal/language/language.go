// Package language binds languages to minification pipelines.
//
// The built-in minifiers cache their pipeline and rebuild it only when a
// toggle changes value. A minifier's setters must not be called while
// another goroutine is running Minify on the same instance; separate
// instances share no mutable state.
package language

import "regexp"

// Minifier produces the minified form of source text for one language.
type Minifier interface {
	// Name is the language name, e.g. "python".
	Name() string
	// Extensions are the file extensions handled, with the leading dot.
	Extensions() []string
	Minify(code string) string
}

var (
	hashComment     = regexp.MustCompile(`(?m)#.*$`)
	tripleQuoted    = regexp.MustCompile(`(?s)""".*?"""|'''.*?'''`)
	slashComment    = regexp.MustCompile(`(?m)//.*$`)
	blockComment    = regexp.MustCompile(`(?s)/\*.*?\*/`)
	markupComment   = regexp.MustCompile(`(?s)<!--.*?-->`)
	embeddedComment = regexp.MustCompile(`(?m)/\*.*?\*/|(?:^|\s)//.*$`)
)

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
