package project

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minifykit/internal/files"
	"minifykit/internal/language"
	"minifykit/internal/logger"
	"minifykit/internal/registry"
	"minifykit/internal/report"
)

// countingMinifier records how often it ran.
type countingMinifier struct {
	calls int
}

func (c *countingMinifier) Name() string         { return "counting" }
func (c *countingMinifier) Extensions() []string { return []string{".cnt"} }
func (c *countingMinifier) Minify(code string) string {
	c.calls++
	return "min:" + code
}

func writeFiles(t *testing.T, root string, content map[string]string) {
	t.Helper()
	for name, body := range content {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
}

func projectFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"test.py":             "def hello(): print('Hello, world!')",
		"test.js":             "function hello() { console.log('Hello, world!'); }",
		"test.min.js":         "function hello(){console.log('Hello, world!')}",
		"test.txt":            "Hello, world!",
		"__pycache__/test.py": "def hello(): print('Hello, world!')",
	})
	return root
}

func newTestMinifier(opts ...Option) *Minifier {
	return New(registry.NewDefault(), files.NewProcessor(), append([]Option{WithQuiet(true)}, opts...)...)
}

func TestMinifyProject(t *testing.T) {
	root := projectFixture(t)

	processed, skipped, err := newTestMinifier().MinifyProject(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, skipped)

	out, err := os.ReadFile(filepath.Join(root, "test.min.py"))
	require.NoError(t, err)
	assert.Equal(t, "def hello(): print('Hello, world!')", string(out))
	assert.NoFileExists(t, filepath.Join(root, "__pycache__", "test.min.py"))
	assert.NoFileExists(t, filepath.Join(root, "test.min.txt"))
}

func TestMinifyProjectUnchangedIsSkipped(t *testing.T) {
	root := projectFixture(t)
	m := newTestMinifier()

	_, _, err := m.MinifyProject(root, Options{})
	require.NoError(t, err)

	processed, skipped, err := m.MinifyProject(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, processed)
	assert.Equal(t, 4, skipped)
}

func TestMinifyProjectFilters(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		processed int
	}{
		{"languages", Options{Languages: []string{"python"}}, 1},
		{"extensions", Options{Extensions: []string{".js"}}, 1},
		{"extension without dot", Options{Extensions: []string{"JS"}}, 1},
		{"languages and extensions", Options{Languages: []string{"python"}, Extensions: []string{"js"}}, 2},
		{"unknown language falls back to all", Options{Languages: []string{"cobol"}}, 2},
		{"unregistered extension", Options{Extensions: []string{".txt"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := projectFixture(t)
			processed, _, err := newTestMinifier().MinifyProject(root, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.processed, processed)
		})
	}
}

func TestMinifyProjectCustomSuffix(t *testing.T) {
	root := projectFixture(t)

	processed, skipped, err := newTestMinifier().MinifyProject(root, Options{Suffix: "-small"})
	require.NoError(t, err)
	// test.min.js does not carry the "-small." marker and is minified too
	assert.Equal(t, 3, processed)
	assert.Equal(t, 0, skipped)
	assert.FileExists(t, filepath.Join(root, "test-small.js"))
	assert.FileExists(t, filepath.Join(root, "test.min-small.js"))
}

func TestMinifyProjectSkipAndExclude(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"app.js":              "var a = 1;",
		"vendor/lib.js":       "var b = 2;",
		"src/app.test.js":     "var c = 3;",
		"src/deep/widget.css": "a { b: c }",
	})

	m := newTestMinifier(WithSkip("vendor"), WithExclude("**/*.test.js"))
	processed, skipped, err := m.MinifyProject(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.Equal(t, 0, skipped)
	assert.NoFileExists(t, filepath.Join(root, "vendor", "lib.min.js"))
	assert.NoFileExists(t, filepath.Join(root, "src", "app.test.min.js"))
	assert.FileExists(t, filepath.Join(root, "src", "deep", "widget.min.css"))
}

func TestMinifyProjectContinuesAfterError(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"bad.js":  string([]byte{0xff, 0xfe}),
		"good.js": "var a = 1;",
	})

	processed, skipped, err := newTestMinifier().MinifyProject(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 0, skipped)
	assert.FileExists(t, filepath.Join(root, "good.min.js"))
}

func TestMinifyProjectMissingRoot(t *testing.T) {
	_, _, err := newTestMinifier().MinifyProject(filepath.Join(t.TempDir(), "nope"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMinifyProjectCache(t *testing.T) {
	for _, tt := range []struct {
		name  string
		size  int
		calls int
	}{
		{"cached", DefaultCacheSize, 1},
		{"uncached", 0, 2},
	} {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, map[string]string{"a.cnt": "same", "b/c.cnt": "same"})

			counter := &countingMinifier{}
			reg := registry.New()
			reg.Register(counter)

			m := New(reg, files.NewProcessor(), WithQuiet(true), WithCacheSize(tt.size))
			processed, _, err := m.MinifyProject(root, Options{})
			require.NoError(t, err)
			assert.Equal(t, 2, processed)
			assert.Equal(t, tt.calls, counter.calls)

			out, err := os.ReadFile(filepath.Join(root, "b", "c.min.cnt"))
			require.NoError(t, err)
			assert.Equal(t, "min:same", string(out))
		})
	}
}

func TestClean(t *testing.T) {
	root := projectFixture(t)
	writeFiles(t, root, map[string]string{"test.min.py": "x", "lib/util.min.css": "y"})
	m := newTestMinifier()

	count, err := m.Clean(root, "", []string{".js"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoFileExists(t, filepath.Join(root, "test.min.js"))
	assert.FileExists(t, filepath.Join(root, "test.min.py"))

	count, err = m.Clean(root, ".min", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.FileExists(t, filepath.Join(root, "test.py"))
	assert.FileExists(t, filepath.Join(root, "test.js"))
}

func TestCleanAfterMinify(t *testing.T) {
	root := projectFixture(t)
	m := newTestMinifier()

	_, _, err := m.MinifyProject(root, Options{})
	require.NoError(t, err)

	count, err := m.Clean(root, DefaultSuffix, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTargetExtensionsWarnsWhenFilterMatchesNothing(t *testing.T) {
	var buf bytes.Buffer
	m := newTestMinifier(WithLogger(logger.New("warn", &buf)))

	targets := m.targetExtensions([]string{"cobol"}, nil)
	assert.Equal(t, []string{".css", ".htm", ".html", ".js", ".py"}, sortedKeys(targets))
	assert.Contains(t, buf.String(), "unknown language")
	assert.Contains(t, buf.String(), "filter matched nothing")

	buf.Reset()
	targets = m.targetExtensions(nil, nil)
	assert.Len(t, targets, 5)
	assert.Empty(t, buf.String(), "no filter is not a warning")

	buf.Reset()
	targets = m.targetExtensions([]string{"cobol", "css"}, nil)
	assert.Equal(t, []string{".css"}, sortedKeys(targets))
	assert.Contains(t, buf.String(), "unknown language")
	assert.NotContains(t, buf.String(), "filter matched nothing")
}

func TestTargetExtensionsFollowRoutedExtensions(t *testing.T) {
	reg := registry.NewDefault()
	reg.Register(language.NewCustom("jsx", []string{".jsx", ".js"}, nil))
	m := New(reg, files.NewProcessor(), WithQuiet(true))

	// .js now belongs to jsx, so the javascript filter selects nothing of its own
	assert.Equal(t, []string{".js", ".jsx"}, sortedKeys(m.targetExtensions([]string{"jsx"}, nil)))
	assert.NotContains(t, m.targetExtensions([]string{"javascript", "css"}, nil), ".js")
}

func TestMinifyProjectReport(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"app.js":    "var a = 1;   // one\n\n\nvar b = 2;\n",
		"style.css": "a {\n  color: red;\n}\n",
	})

	summary := report.NewSummary(report.Gzip)
	m := newTestMinifier(WithReport(summary))
	_, _, err := m.MinifyProject(root, Options{})
	require.NoError(t, err)

	entries := summary.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "app.js", entries[0].Path)
	assert.Equal(t, len("var a = 1;   // one\n\n\nvar b = 2;\n"), entries[0].Original)
	assert.Less(t, entries[0].Minified, entries[0].Original)
	assert.Equal(t, "style.css", entries[1].Path)
	assert.Greater(t, entries[1].Compressed[report.Gzip], 0)

	// unchanged outputs are still measured on the next run; the two
	// outputs themselves are skipped as already minified
	summary = report.NewSummary(report.Gzip)
	_, skipped, err := newTestMinifier(WithReport(summary)).MinifyProject(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, skipped)
	assert.Len(t, summary.Entries(), 2)
}
