package project

import (
	"path/filepath"
	"strings"
)

// isExcluded checks if a path matches any of the exclude patterns
func isExcluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

// matchPattern checks if a path matches a pattern (supports * and **)
func matchPattern(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) != 2 {
			return false
		}
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" && !strings.HasPrefix(path, prefix) {
			matched, _ := filepath.Match(prefix+"*", path)
			if !matched {
				return false
			}
		}

		if suffix == "" {
			return true
		}
		if matched, _ := filepath.Match(suffix, filepath.Base(path)); matched {
			return true
		}
		if strings.HasSuffix(path, suffix) {
			return true
		}
		matched, _ := filepath.Match("*"+suffix, path)
		return matched
	}

	if matched, _ := filepath.Match(pattern, path); matched {
		return true
	}

	// Also try matching against just the filename
	matched, _ := filepath.Match(pattern, filepath.Base(path))
	return matched
}

// inSkippedDir reports whether the slash-separated relative directory path
// contains any of the skip substrings.
func inSkippedDir(rel string, skip []string) bool {
	for _, s := range skip {
		if s != "" && strings.Contains(rel, s) {
			return true
		}
	}
	return false
}

// hasMarker reports whether the file name carries the minified marker,
// i.e. the suffix followed by a dot ("app.min.js" for ".min").
func hasMarker(name, suffix string) bool {
	return strings.Contains(name, suffix+".")
}
