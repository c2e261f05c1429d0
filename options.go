package filerouter

import (
	"io/fs"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/loader"
	"github.com/dmitrymomot/filerouter/core/server"
)

// Option configures an App during creation.
type Option func(*App)

// WithRoutesDir sets the routes directory. Empty values are ignored.
func WithRoutesDir(dir string) Option {
	return func(a *App) {
		if dir != "" {
			a.routesDir = dir
		}
	}
}

// WithCacheRoutes enables or disables the handler cache.
func WithCacheRoutes(enabled bool) Option {
	return func(a *App) {
		a.cacheRoutes = enabled
	}
}

// WithNotFoundHandler sets the handler used for route modules without a
// handler export. Nil is ignored.
func WithNotFoundHandler(h handler.HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.notFound = h
		}
	}
}

// WithLoader sets the module loader. Defaults to an empty loader.Registry
// rooted at the routes directory.
func WithLoader(l loader.Loader) Option {
	return func(a *App) {
		if l != nil {
			a.loader = l
		}
	}
}

// WithResolver replaces the file-system router with a custom resolver.
// Routes directory, routes FS and extensions are then unused.
func WithResolver(r Resolver) Option {
	return func(a *App) {
		if r != nil {
			a.resolver = r
		}
	}
}

// WithRoutesFS scans fsys instead of the routes directory on disk.
// The routes directory still prefixes resolved file paths.
func WithRoutesFS(fsys fs.FS) Option {
	return func(a *App) {
		a.routesFS = fsys
	}
}

// WithExtensions sets the file extensions treated as routes (default ".route"),
// replacing any previously set. An empty list keeps the current value.
func WithExtensions(extensions ...string) Option {
	return func(a *App) {
		if len(extensions) > 0 {
			a.extensions = slices.Clone(extensions)
		}
	}
}

// WithLogger sets the logger used by the dispatcher and the server.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithServerOptions sets options applied to the server created by Listen.
func WithServerOptions(opts ...server.Option) Option {
	return func(a *App) {
		a.serverOpts = append(a.serverOpts, opts...)
	}
}
