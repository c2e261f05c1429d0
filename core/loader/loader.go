package loader

import (
	"context"

	"github.com/dmitrymomot/filerouter/core/handler"
)

// Loader loads the exported handler of a resolved route file.
// Errors are reported as is: a missing or broken module is an error, while a
// module whose export is not a handler is a valid, non-callable Module.
type Loader interface {
	Load(ctx context.Context, path string) (Module, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (Module, error)

// Load calls f(ctx, path).
func (f LoaderFunc) Load(ctx context.Context, path string) (Module, error) {
	return f(ctx, path)
}

// Module is a loaded route module, classified once at the loader boundary as
// either callable (it carries a handler) or invalid.
type Module struct {
	path    string
	handler handler.HandlerFunc
}

// Classify tags a module export. Handler functions are callable; anything else,
// nil included, produces a non-callable module.
func Classify(path string, export any) Module {
	m := Module{path: path}

	switch h := export.(type) {
	case handler.HandlerFunc:
		m.handler = h
	case func(*handler.Context) (handler.Response, error):
		m.handler = h
	case *handler.HandlerFunc:
		if h != nil {
			m.handler = *h
		}
	case *func(*handler.Context) (handler.Response, error):
		if h != nil {
			m.handler = *h
		}
	}

	return m
}

// Path returns the file path the module was loaded from.
func (m Module) Path() string {
	return m.path
}

// Handler returns the module handler and whether the module is callable.
func (m Module) Handler() (handler.HandlerFunc, bool) {
	return m.handler, m.handler != nil
}

// Callable reports whether the module exports a handler.
func (m Module) Callable() bool {
	return m.handler != nil
}
