package filerouter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"slices"
	"strconv"

	"github.com/dmitrymomot/filerouter/core/fsroute"
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/loader"
	"github.com/dmitrymomot/filerouter/core/logger"
	"github.com/dmitrymomot/filerouter/core/response"
	"github.com/dmitrymomot/filerouter/core/server"
)

// DefaultRoutesDir is the routes directory used when none is configured.
const DefaultRoutesDir = "./routes"

// Resolver matches a request to a route file.
// *fsroute.Router is the default implementation.
type Resolver interface {
	Match(r *http.Request) (fsroute.Match, bool)
}

// Config holds App configuration with environment variable support.
// Start from DefaultConfig or config.Load: the zero value disables the
// handler cache.
type Config struct {
	RoutesDir   string   `env:"ROUTES_DIR" envDefault:"./routes" yaml:"routes_dir"`
	CacheRoutes bool     `env:"CACHE_ROUTES" envDefault:"true" yaml:"cache_routes"`
	Extensions  []string `env:"ROUTE_EXTENSIONS" envDefault:".route" yaml:"extensions"`
}

// App dispatches requests: it resolves the route, builds the context, runs the
// middleware chain and the handler, and translates errors into responses.
// Register middleware before serving; once serving, App is safe for concurrent use.
type App struct {
	routesDir   string
	cacheRoutes bool
	notFound    handler.HandlerFunc
	extensions  []string
	routesFS    fs.FS
	resolver    Resolver
	loader      loader.Loader
	cache       *handlerCache
	middlewares []handler.Middleware
	logger      *slog.Logger
	serverOpts  []server.Option
}

// New creates an App. Defaults: routes in "./routes", handler cache enabled,
// the built-in NotFound handler and an empty loader.Registry.
// The routes directory is scanned immediately.
func New(opts ...Option) (*App, error) {
	a := &App{
		routesDir:   DefaultRoutesDir,
		cacheRoutes: true,
		notFound:    NotFound,
		logger:      logger.Nop(),
		cache:       newHandlerCache(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.resolver == nil {
		fsys := a.routesFS
		if fsys == nil {
			fsys = os.DirFS(a.routesDir)
		}

		r, err := fsroute.New(fsys,
			fsroute.WithDir(a.routesDir),
			fsroute.WithExtensions(a.extensions...),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRoutesDir, a.routesDir, err)
		}
		a.resolver = r
	}

	if a.loader == nil {
		a.loader = loader.NewRegistry(a.routesDir)
	}

	return a, nil
}

// DefaultConfig returns a Config with the same values New uses by default.
func DefaultConfig() Config {
	return Config{
		RoutesDir:   DefaultRoutesDir,
		CacheRoutes: true,
		Extensions:  slices.Clone(fsroute.DefaultExtensions),
	}
}

// NewFromConfig creates an App from configuration.
// Additional options can override config values. Empty RoutesDir and
// Extensions fall back to the defaults; CacheRoutes is always applied.
func NewFromConfig(cfg Config, opts ...Option) (*App, error) {
	configOpts := []Option{
		WithRoutesDir(cfg.RoutesDir),
		WithCacheRoutes(cfg.CacheRoutes),
		WithExtensions(cfg.Extensions...),
	}
	return New(append(configOpts, opts...)...)
}

// NotFound is the default not-found handler: 404 {"error":"NotFound"}.
func NotFound(ctx *handler.Context) (handler.Response, error) {
	return response.JSONError(NotFoundMessage, http.StatusNotFound), nil
}

// Use appends middleware to the chain and returns the App for chaining.
// Middleware run in registration order before every resolved handler.
func (a *App) Use(middlewares ...handler.Middleware) *App {
	for _, mw := range middlewares {
		if mw != nil {
			a.middlewares = append(a.middlewares, mw)
		}
	}
	return a
}

// Listen binds the port and serves the App in the background.
// The returned server reports the bound address and stops the listener.
func (a *App) Listen(port int) (*server.Server, error) {
	opts := append([]server.Option{server.WithLogger(a.logger)}, a.serverOpts...)
	srv := server.New(net.JoinHostPort("", strconv.Itoa(port)), opts...)

	if err := srv.Listen(a); err != nil {
		return nil, err
	}

	return srv, nil
}

// Routes returns the routes known to the resolver, if it can list them.
func (a *App) Routes() []fsroute.Route {
	if lister, ok := a.resolver.(interface{ Routes() []fsroute.Route }); ok {
		return lister.Routes()
	}
	return nil
}
