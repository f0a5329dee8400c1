// Package registry looks up minifiers by language name and file extension.
package registry

import (
	"sort"
	"strings"
	"sync"

	"minifykit/internal/language"
)

// Registry maps names and extensions to minifiers. Registries are built and
// passed explicitly; there is no process-wide instance.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]language.Minifier
	// extension -> lower-cased name of the minifier that handles it
	owners map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]language.Minifier),
		owners: make(map[string]string),
	}
}

// NewDefault returns a registry holding fresh python, javascript, css and
// html minifiers with their default options.
func NewDefault() *Registry {
	r := New()
	r.Register(language.NewPython(language.DefaultPythonOptions()))
	r.Register(language.NewJavaScript(language.DefaultJavaScriptOptions()))
	r.Register(language.NewCSS())
	r.Register(language.NewHTML(language.DefaultHTMLOptions()))
	return r
}

// Register adds m under its lower-cased name and extensions. Registering a
// name again replaces the earlier minifier together with all of its
// extensions. An extension claimed by another name moves to m, and the
// earlier minifier stays reachable by name through its remaining ones.
func (r *Registry) Register(m language.Minifier) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(m.Name())
	if _, exists := r.byName[name]; exists {
		for ext, owner := range r.owners {
			if owner == name {
				delete(r.owners, ext)
			}
		}
	} else {
		r.order = append(r.order, name)
	}
	r.byName[name] = m

	for _, ext := range m.Extensions() {
		if ext = NormalizeExtension(ext); ext != "" {
			r.owners[ext] = name
		}
	}
}

// ByName returns the minifier registered under name, ignoring case.
func (r *Registry) ByName(name string) (language.Minifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byName[strings.ToLower(name)]
	return m, ok
}

// ByExtension returns the minifier for ext. The leading dot is optional
// and case is ignored.
func (r *Registry) ByExtension(ext string) (language.Minifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.owners[NormalizeExtension(ext)]
	if !ok {
		return nil, false
	}
	return r.byName[name], true
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.owners))
	for ext := range r.owners {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ExtensionsOf returns the sorted extensions currently routed to the
// minifier called name. This can be fewer than it declares when a later
// registration took some of them over.
func (r *Registry) ExtensionsOf(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(name)
	exts := []string{}
	for ext, owner := range r.owners {
		if owner == name {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// All returns the registered minifiers in registration order.
func (r *Registry) All() []language.Minifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]language.Minifier, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.byName[name])
	}
	return all
}

// NormalizeExtension lower-cases ext and adds a leading dot if missing.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
