package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Properties represents a parsed properties file as a map
type Properties map[string]string

// ParseProperties parses a properties file supporting both = and : delimiters
func ParseProperties(path string) (Properties, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	props := make(Properties)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key=value or key: value, whichever delimiter comes first.
		// Values may hold either character (regular expressions, URLs).
		idx := strings.IndexAny(line, "=:")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		props[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return props, nil
}

// Get returns the value for a key, or empty string if not found
func (p Properties) Get(key string) string {
	return p[key]
}

// GetWithDefault returns the value for a key, or the default if not found
func (p Properties) GetWithDefault(key, defaultValue string) string {
	if val, ok := p[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

// GetBool returns true unless the value is "false", "no", or "0"
func (p Properties) GetBool(key string) bool {
	val := p[key]
	if val == "" {
		return false
	}
	return !(val == "false" || val == "no" || val == "0")
}

// GetList parses a comma-separated value into a slice
func (p Properties) GetList(key string) []string {
	val := p[key]
	if val == "" {
		return []string{}
	}

	var result []string
	items := strings.Split(val, ",")
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// GetBoolWithDefault returns the default when the key is unset
func (p Properties) GetBoolWithDefault(key string, defaultValue bool) bool {
	if p[key] == "" {
		return defaultValue
	}
	return p.GetBool(key)
}

// GetInt returns the value as an integer, or the default if unset
func (p Properties) GetInt(key string, defaultValue int) (int, error) {
	val := p[key]
	if val == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", key, val)
	}
	return n, nil
}

// GetFields splits a value on whitespace, for lists whose items may
// contain commas (regular expressions)
func (p Properties) GetFields(key string) []string {
	return strings.Fields(p[key])
}

// Has reports whether the key is set, even to an empty value
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// KeysWithPrefix returns the sorted keys that start with prefix
func (p Properties) KeysWithPrefix(prefix string) []string {
	var keys []string
	for k := range p {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// PropertiesFileExists checks if a properties file exists in the directory
func PropertiesFileExists(dir, filename string) bool {
	path := filepath.Join(dir, filename)
	return FileExists(path)
}
