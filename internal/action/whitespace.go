package action

import "strings"

// WhitespaceReduction collapses runs of whitespace to a single space.
//
// With newlines preserved every line is normalised on its own and the line
// structure survives. Without, the whole text is one token stream and all
// line breaks are lost.
type WhitespaceReduction struct {
	preserveNewlines bool
}

func NewWhitespaceReduction(preserveNewlines bool) *WhitespaceReduction {
	return &WhitespaceReduction{preserveNewlines: preserveNewlines}
}

func (w *WhitespaceReduction) Apply(code string) string {
	if !w.preserveNewlines {
		return collapse(code)
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = collapse(line)
	}
	return strings.Join(lines, "\n")
}

func (w *WhitespaceReduction) Name() string { return "WhitespaceReduction" }

// PreserveNewlines reports the mode the action was built with.
func (w *WhitespaceReduction) PreserveNewlines() bool {
	return w.preserveNewlines
}

// collapse joins the whitespace-separated fields of s with single spaces,
// which also trims both ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EmptyLineRemoval drops lines that contain only whitespace.
type EmptyLineRemoval struct{}

func NewEmptyLineRemoval() *EmptyLineRemoval {
	return &EmptyLineRemoval{}
}

func (e *EmptyLineRemoval) Apply(code string) string {
	lines := strings.Split(code, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func (e *EmptyLineRemoval) Name() string { return "EmptyLineRemoval" }
