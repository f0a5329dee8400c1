package action

import "strings"

// DefaultSeparator is the statement separator used by the factory.
const DefaultSeparator = ";"

// LineJoining merges all non-blank lines into one, separated by a fixed
// separator. It is line based and knows nothing about the syntax, so it
// can produce invalid merges where a separator is not legal.
type LineJoining struct {
	separator string
}

func NewLineJoining(separator string) *LineJoining {
	return &LineJoining{separator: separator}
}

func (l *LineJoining) Apply(code string) string {
	var b strings.Builder
	n := 0
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if n > 0 {
			b.WriteString(l.separator)
		}
		b.WriteString(strings.TrimSuffix(line, l.separator))
		n++
	}
	return b.String()
}

func (l *LineJoining) Name() string { return "LineJoining" }

// Separator returns the configured separator.
func (l *LineJoining) Separator() string {
	return l.separator
}
