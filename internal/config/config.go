package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"minifykit/internal/action"
	"minifykit/internal/language"
	"minifykit/internal/project"
	"minifykit/internal/registry"
	"minifykit/internal/report"
)

// FileName is the optional project configuration file
const FileName = "minifykit.properties"

// EnvFile is the optional dotenv file read next to FileName
const EnvFile = ".env"

// Environment overrides; they win over FileName and lose to CLI flags
const (
	EnvSuffix   = "MINIFYKIT_SUFFIX"
	EnvSkip     = "MINIFYKIT_SKIP"
	EnvLogLevel = "MINIFYKIT_LOG_LEVEL"
)

// DefaultLogLevel is used when neither the file nor the environment sets one
const DefaultLogLevel = "warn"

const customPrefix = "custom."

// ActionConfig describes one step of a custom language pipeline
type ActionConfig struct {
	Kind   action.Kind
	Params action.Params
}

// CustomLanguage is a minifier assembled from configured actions
type CustomLanguage struct {
	Name       string
	Extensions []string
	Actions    []ActionConfig
}

// Config holds the minifykit project configuration
type Config struct {
	Suffix     string
	Languages  []string
	Extensions []string
	Skip       []string
	Exclude    []string
	CacheSize  int
	LogLevel   string

	// Report enables the size report; ReportAlgorithms are codec names.
	Report           bool
	ReportAlgorithms []string

	Python     language.PythonOptions
	JavaScript language.JavaScriptOptions
	HTML       language.HTMLOptions

	Custom []CustomLanguage
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Suffix:    project.DefaultSuffix,
		Skip:      append([]string(nil), project.DefaultSkip...),
		CacheSize: project.DefaultCacheSize,
		LogLevel:  DefaultLogLevel,

		ReportAlgorithms: algorithmNames(report.DefaultAlgorithms),

		Python:     language.DefaultPythonOptions(),
		JavaScript: language.DefaultJavaScriptOptions(),
		HTML:       language.DefaultHTMLOptions(),
	}
}

// Load reads minifykit.properties and .env from dir, both optional, and
// applies the MINIFYKIT_* environment overrides. Process environment
// values take precedence over the .env file.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if PropertiesFileExists(dir, FileName) {
		props, err := ParseProperties(filepath.Join(dir, FileName))
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(props); err != nil {
			return nil, fmt.Errorf("%s: %w", FileName, err)
		}
	}

	dotenv := map[string]string{}
	envPath := filepath.Join(dir, EnvFile)
	if FileExists(envPath) {
		values, err := godotenv.Read(envPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", envPath, err)
		}
		dotenv = values
	}
	cfg.applyEnv(func(key string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		return dotenv[key]
	})

	return cfg, nil
}

// Apply overlays the values present in props onto c
func (c *Config) Apply(props Properties) error {
	c.Suffix = props.GetWithDefault("suffix", c.Suffix)
	c.LogLevel = props.GetWithDefault("log-level", c.LogLevel)

	if props.Has("languages") {
		c.Languages = props.GetList("languages")
	}
	if props.Has("extensions") {
		c.Extensions = props.GetList("extensions")
	}
	if props.Has("skip") {
		c.Skip = props.GetList("skip")
	}
	if props.Has("exclude") {
		c.Exclude = props.GetList("exclude")
	}

	c.Report = props.GetBoolWithDefault("report", c.Report)
	if props.Has("report.algorithms") {
		c.ReportAlgorithms = props.GetList("report.algorithms")
	}

	size, err := props.GetInt("cache-size", c.CacheSize)
	if err != nil {
		return err
	}
	c.CacheSize = size

	c.Python.PreserveNewlines = props.GetBoolWithDefault("python.preserve-newlines", c.Python.PreserveNewlines)
	c.Python.PreserveDocstrings = props.GetBoolWithDefault("python.preserve-docstrings", c.Python.PreserveDocstrings)
	c.JavaScript.PreserveNewlines = props.GetBoolWithDefault("javascript.preserve-newlines", c.JavaScript.PreserveNewlines)
	c.JavaScript.Aggressive = props.GetBoolWithDefault("javascript.aggressive", c.JavaScript.Aggressive)
	c.HTML.PreserveNewlines = props.GetBoolWithDefault("html.preserve-newlines", c.HTML.PreserveNewlines)

	custom, err := parseCustomLanguages(props)
	if err != nil {
		return err
	}
	c.Custom = append(c.Custom, custom...)
	return nil
}

// Algorithms resolves ReportAlgorithms
func (c *Config) Algorithms() ([]report.Algorithm, error) {
	return report.ParseAlgorithms(c.ReportAlgorithms)
}

func algorithmNames(algos []report.Algorithm) []string {
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = string(a)
	}
	return names
}

func (c *Config) applyEnv(getenv func(string) string) {
	if val := getenv(EnvSuffix); val != "" {
		c.Suffix = val
	}
	if val := getenv(EnvSkip); val != "" {
		c.Skip = Properties{EnvSkip: val}.GetList(EnvSkip)
	}
	if val := getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}
}

// parseCustomLanguages reads every custom.<name>.actions entry, in name order
func parseCustomLanguages(props Properties) ([]CustomLanguage, error) {
	var result []CustomLanguage
	for _, key := range props.KeysWithPrefix(customPrefix) {
		if !strings.HasSuffix(key, ".actions") {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(key, customPrefix), ".actions")
		if name == "" || strings.Contains(name, ".") {
			return nil, fmt.Errorf("invalid custom language key %q", key)
		}

		prefix := customPrefix + name + "."
		lang := CustomLanguage{
			Name:       name,
			Extensions: props.GetList(prefix + "extensions"),
		}
		for _, kind := range props.GetList(key) {
			params := prefix + kind + "."
			lang.Actions = append(lang.Actions, ActionConfig{
				Kind: action.Kind(kind),
				Params: action.Params{
					SingleLinePattern: props.Get(params + "single"),
					MultiLinePattern:  props.Get(params + "multi"),
					PreserveNewlines:  props.GetBool(params + "preserve-newlines"),
					Patterns:          props.GetFields(params + "patterns"),
					Separator:         props.Get(params + "separator"),
				},
			})
		}
		result = append(result, lang)
	}
	return result, nil
}

// Build assembles the custom minifier through the action factory
func (l CustomLanguage) Build() (*language.Custom, error) {
	actions := make([]action.Action, 0, len(l.Actions))
	for _, ac := range l.Actions {
		a, err := action.New(ac.Kind, l.Name+"."+string(ac.Kind), ac.Params)
		if err != nil {
			return nil, fmt.Errorf("custom language %s: %w", l.Name, err)
		}
		actions = append(actions, a)
	}
	return language.NewCustom(l.Name, l.Extensions, actions), nil
}

// Registry returns a registry with the built-in minifiers configured from c
// followed by the custom languages. A custom language sharing a name or
// extension with a built-in replaces it.
func (c *Config) Registry() (*registry.Registry, error) {
	reg := registry.New()
	reg.Register(language.NewPython(c.Python))
	reg.Register(language.NewJavaScript(c.JavaScript))
	reg.Register(language.NewCSS())
	reg.Register(language.NewHTML(c.HTML))

	for _, l := range c.Custom {
		m, err := l.Build()
		if err != nil {
			return nil, err
		}
		reg.Register(m)
	}
	return reg, nil
}
