package project

import (
	"fmt"

	"minifykit/internal/language"
)

// FileAccessor is the file access the project walker needs.
type FileAccessor interface {
	Read(path string) (string, error)
	Write(path, content string) error
	Exists(path string) bool
	Delete(path string) error
	MinifiedPath(path, suffix string) string
}

// Job minifies a single file into its derived path.
type Job struct {
	Path         string
	MinifiedPath string
	Minifier     language.Minifier
	Files        FileAccessor

	// Set by Execute once the source has been minified.
	InputSize int
	Output    string
}

// NewJob returns a job writing the minified form of path next to it.
func NewJob(path string, m language.Minifier, files FileAccessor, suffix string) *Job {
	return &Job{
		Path:         path,
		MinifiedPath: files.MinifiedPath(path, suffix),
		Minifier:     m,
		Files:        files,
	}
}

// Execute reads, minifies and writes the file. It returns false without
// writing when the existing minified file already has identical content.
func (j *Job) Execute() (bool, error) {
	code, err := j.Files.Read(j.Path)
	if err != nil {
		return false, fmt.Errorf("failed to read source: %w", err)
	}

	minified := j.Minifier.Minify(code)
	j.InputSize = len(code)
	j.Output = minified

	if j.Files.Exists(j.MinifiedPath) {
		existing, err := j.Files.Read(j.MinifiedPath)
		if err == nil && existing == minified {
			return false, nil
		}
	}

	if err := j.Files.Write(j.MinifiedPath, minified); err != nil {
		return false, fmt.Errorf("failed to write minified file: %w", err)
	}
	return true, nil
}
