package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// Registry is a Loader backed by exports registered at compile time, keyed by
// route file names relative to the routes directory.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	root    string
	exports map[string]any
}

// NewRegistry creates an empty registry for the routes directory root.
func NewRegistry(root string) *Registry {
	return &Registry{
		root:    root,
		exports: make(map[string]any),
	}
}

// Register stores the export of a route file, e.g. Register("users/[id].route", show).
// Registering the same name again replaces the previous export. The export is
// classified on load, so non-handler values are accepted and load as
// non-callable modules.
func (r *Registry) Register(name string, export any) error {
	if name == "" {
		return ErrEmptyModuleName
	}

	key := r.key(name)

	r.mu.Lock()
	r.exports[key] = export
	r.mu.Unlock()

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, export any) {
	if err := r.Register(name, export); err != nil {
		panic(err)
	}
}

// Load implements Loader.
func (r *Registry) Load(_ context.Context, path string) (Module, error) {
	key := filepath.Clean(path)

	r.mu.RLock()
	export, ok := r.exports[key]
	r.mu.RUnlock()

	if !ok {
		return Module{}, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
	}

	return Classify(key, export), nil
}

// Paths returns the registered file paths in lexical order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.exports))
	for p := range r.exports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r *Registry) key(name string) string {
	return filepath.Join(r.root, filepath.FromSlash(name))
}
