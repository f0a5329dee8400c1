// Package files reads and writes the source and minified files on disk.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotFound         = errors.New("file not found")
	ErrDecode           = errors.New("file is not valid UTF-8")
	ErrPermissionDenied = errors.New("permission denied")
)

// Processor performs file operations on the local filesystem.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Read returns the content of path as text.
func (p *Processor) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return string(data), nil
}

// Write replaces the content of path, creating parent directories.
func (p *Processor) Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return classify(path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return classify(path, err)
	}
	return nil
}

// Exists checks if a file exists at the given path
func (p *Processor) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Delete removes the file at path.
func (p *Processor) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return classify(path, err)
	}
	return nil
}

// MinifiedPath inserts suffix before the final extension of path:
// "a/b.js" with ".min" gives "a/b.min.js". A path without an extension
// gets the suffix appended.
func (p *Processor) MinifiedPath(path, suffix string) string {
	return MinifiedPath(path, suffix)
}

func MinifiedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		// dotfiles such as ".env" have no extension
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
