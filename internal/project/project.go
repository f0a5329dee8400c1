// Package project minifies and cleans whole directory trees.
package project

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"minifykit/internal/logger"
	"minifykit/internal/registry"
	"minifykit/internal/report"
	"minifykit/internal/ui"
)

// DefaultSuffix marks minified files: "app.js" becomes "app.min.js".
const DefaultSuffix = ".min"

// DefaultSkip lists the directory substrings skipped unless overridden.
var DefaultSkip = []string{"__pycache__"}

// Minifier walks a project and dispatches files to the registered
// language minifiers.
type Minifier struct {
	registry  *registry.Registry
	files     FileAccessor
	skip      []string
	exclude   []string
	cacheSize int
	quiet     bool
	report    *report.Summary
	log       *slog.Logger
}

// Option configures a Minifier.
type Option func(*Minifier)

// WithSkip replaces the directory substrings to skip (DefaultSkip).
func WithSkip(skip ...string) Option {
	return func(m *Minifier) {
		m.skip = append([]string(nil), skip...)
	}
}

// WithExclude adds glob patterns (with ** support) of files to ignore.
func WithExclude(patterns ...string) Option {
	return func(m *Minifier) {
		m.exclude = append(m.exclude, patterns...)
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Minifier) {
		m.log = log
	}
}

// WithCacheSize sets how many results are memoised per run; 0 disables it.
func WithCacheSize(n int) Option {
	return func(m *Minifier) {
		m.cacheSize = n
	}
}

// WithQuiet suppresses per-file progress output. Errors are still printed.
func WithQuiet(quiet bool) Option {
	return func(m *Minifier) {
		m.quiet = quiet
	}
}

// WithReport records the size of every minified file in s.
func WithReport(s *report.Summary) Option {
	return func(m *Minifier) {
		m.report = s
	}
}

// New returns a project Minifier using reg for lookups and files for I/O.
func New(reg *registry.Registry, files FileAccessor, opts ...Option) *Minifier {
	m := &Minifier{
		registry:  reg,
		files:     files,
		skip:      append([]string(nil), DefaultSkip...),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = logger.ForComponent(m.log, "project")
	return m
}

// Options select what MinifyProject processes.
type Options struct {
	// Languages restricts processing to the extensions of these minifiers.
	Languages []string
	// Extensions adds explicit extensions; the leading dot is optional.
	Extensions []string
	// Suffix is inserted before the extension of output files.
	Suffix string
}

// MinifyProject minifies every eligible file under root. Files already
// carrying the suffix marker, and files whose minified output is unchanged,
// count as skipped. A failure on one file is reported and does not stop
// the run; only a failure to walk root itself is returned.
func (m *Minifier) MinifyProject(root string, opts Options) (processed, skipped int, err error) {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	targets := m.targetExtensions(opts.Languages, opts.Extensions)
	if !m.quiet {
		ui.PrintInfo("Processing file types: %s", strings.Join(sortedKeys(targets), ", "))
	}

	var cache *lru.Cache[string, string]
	if m.cacheSize > 0 {
		if cache, err = lru.New[string, string](m.cacheSize); err != nil {
			return 0, 0, fmt.Errorf("failed to create cache: %w", err)
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			m.log.Warn("cannot access path", slog.String("path", path), slog.Any("error", walkErr))
			return nil
		}

		rel := relPath(root, path)
		if d.IsDir() {
			if path != root && inSkippedDir(rel, m.skip) {
				m.log.Debug("skipping directory", slog.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if isExcluded(rel, m.exclude) {
			m.log.Debug("excluded", slog.String("path", rel))
			return nil
		}

		if hasMarker(d.Name(), suffix) {
			skipped++
			m.log.Debug("already minified", slog.String("path", rel))
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !targets[ext] {
			return nil
		}
		lang, ok := m.registry.ByExtension(ext)
		if !ok {
			return nil
		}
		if cache != nil {
			lang = &cachedMinifier{Minifier: lang, cache: cache}
		}

		job := NewJob(path, lang, m.files, suffix)
		written, jobErr := job.Execute()
		switch {
		case jobErr != nil:
			ui.PrintError("Error processing %s: %v", path, jobErr)
			m.log.Error("minify failed", slog.String("path", rel), slog.Any("error", jobErr))
		case written:
			processed++
			if !m.quiet {
				ui.PrintSuccess("Minified: %s", job.MinifiedPath)
			}
			m.log.Info("minified", slog.String("path", rel), slog.String("language", lang.Name()))
		default:
			skipped++
			if !m.quiet {
				ui.PrintSkip("No change: %s", job.MinifiedPath)
			}
		}
		if jobErr == nil && m.report != nil {
			if err := m.report.Add(rel, job.InputSize, job.Output); err != nil {
				m.log.Warn("size report failed", slog.String("path", rel), slog.Any("error", err))
			}
		}
		return nil
	})
	if err != nil {
		return processed, skipped, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return processed, skipped, nil
}

// Clean deletes the minified files under root, optionally only those with
// the given extensions. A file that cannot be deleted is reported and the
// walk continues.
func (m *Minifier) Clean(root, suffix string, extensions []string) (int, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	var only map[string]bool
	if len(extensions) > 0 {
		only = make(map[string]bool)
		for _, ext := range extensions {
			only[registry.NormalizeExtension(ext)] = true
		}
	}

	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			m.log.Warn("cannot access path", slog.String("path", path), slog.Any("error", walkErr))
			return nil
		}
		if d.IsDir() || !hasMarker(d.Name(), suffix) {
			return nil
		}
		if only != nil && !only[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		if err := m.files.Delete(path); err != nil {
			ui.PrintError("Error deleting %s: %v", path, err)
			m.log.Error("delete failed", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		count++
		if !m.quiet {
			ui.PrintSuccess("Deleted: %s", path)
		}
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return count, nil
}

// targetExtensions resolves the extension set for a run: the extensions of
// the named languages plus the explicit ones, or every registered
// extension when both are empty.
func (m *Minifier) targetExtensions(languages, extensions []string) map[string]bool {
	targets := make(map[string]bool)

	for _, name := range languages {
		name = strings.TrimSpace(name)
		if _, ok := m.registry.ByName(name); !ok {
			ui.PrintWarning("Unknown language: %s", name)
			m.log.Warn("unknown language", slog.String("language", name))
			continue
		}
		for _, ext := range m.registry.ExtensionsOf(name) {
			targets[ext] = true
		}
	}

	for _, ext := range extensions {
		if ext = registry.NormalizeExtension(ext); ext != "" {
			targets[ext] = true
		}
	}

	if len(targets) == 0 {
		if len(languages) > 0 || len(extensions) > 0 {
			ui.PrintWarning("No known language or extension selected, processing every registered extension")
			m.log.Warn("filter matched nothing, processing all extensions",
				slog.Any("languages", languages), slog.Any("extensions", extensions))
		}
		for _, ext := range m.registry.Extensions() {
			targets[ext] = true
		}
	}
	return targets
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
