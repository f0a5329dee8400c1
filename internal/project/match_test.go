package project

import (
	"testing"
)

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "file.js", []string{}, false},
		{"exact match", "file.js", []string{"file.js"}, true},
		{"wildcard match", "file.js", []string{"*.js"}, true},
		{"no match", "file.js", []string{"*.py"}, false},
		{"directory exclude", "dist/app.js", []string{"dist/*"}, true},
		{"recursive exclude", "src/lib/vendor.js", []string{"**/vendor.js"}, true},
		{"multiple excludes match", "file.css", []string{"*.js", "*.css"}, true},
		{"multiple excludes no match", "file.txt", []string{"*.js", "*.css"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isExcluded(tt.path, tt.excludes)
			if result != tt.expected {
				t.Errorf("isExcluded(%q, %v) = %v, want %v", tt.path, tt.excludes, result, tt.expected)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact match", "app.py", "app.py", true},
		{"wildcard extension", "app.py", "*.py", true},
		{"wildcard name", "app.py", "app.*", true},
		{"no match", "app.py", "*.js", false},
		{"recursive pattern", "src/lib/app.py", "**/*.py", true},
		{"recursive with prefix", "static/js/app.js", "static/**/*.js", true},
		{"recursive prefix mismatch", "src/js/app.js", "static/**/*.js", false},
		{"path with directory", "src/app.py", "src/*.py", true},
		{"directory prefix", "build/output.css", "build/*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchPattern(tt.path, tt.pattern)
			if result != tt.expected {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestInSkippedDir(t *testing.T) {
	tests := []struct {
		rel      string
		skip     []string
		expected bool
	}{
		{"src", []string{"__pycache__"}, false},
		{"src/__pycache__", []string{"__pycache__"}, true},
		{"node_modules/lib", []string{"__pycache__", "node_modules"}, true},
		{"src", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := inSkippedDir(tt.rel, tt.skip); got != tt.expected {
				t.Errorf("inSkippedDir(%q, %v) = %v, want %v", tt.rel, tt.skip, got, tt.expected)
			}
		})
	}
}

func TestHasMarker(t *testing.T) {
	tests := []struct {
		name     string
		suffix   string
		expected bool
	}{
		{"app.min.js", ".min", true},
		{"app.js", ".min", false},
		{"app.minimal.js", ".min", false},
		{"app-small.css", "-small", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasMarker(tt.name, tt.suffix); got != tt.expected {
				t.Errorf("hasMarker(%q, %q) = %v, want %v", tt.name, tt.suffix, got, tt.expected)
			}
		})
	}
}
