package fsroute

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// DefaultExtensions lists the file extensions treated as routes by default.
var DefaultExtensions = []string{".route"}

// Match is the result of resolving a request against the routes directory.
type Match struct {
	// FilePath is the resolved file identifier, stable per route.
	FilePath string
	// Name is the file name relative to the routes root.
	Name string
	// Pattern is the matched route pattern.
	Pattern string
	// Query holds the first value of every URL query key with path params merged on top.
	Query map[string]string
	// Params holds the path params only.
	Params map[string]string
}

// Router maps request paths to route files using file-system conventions.
// Safe for concurrent use.
type Router struct {
	mu         sync.RWMutex
	fsys       fs.FS
	dir        string
	extensions []string
	routes     []Route
}

// Option configures a Router.
type Option func(*Router)

// WithExtensions sets the file extensions treated as routes.
// Empty values are ignored.
func WithExtensions(extensions ...string) Option {
	return func(r *Router) {
		var exts []string
		for _, ext := range extensions {
			if ext == "" {
				continue
			}
			if ext[0] != '.' {
				ext = "." + ext
			}
			exts = append(exts, ext)
		}
		if len(exts) > 0 {
			r.extensions = exts
		}
	}
}

// WithDir sets the directory prepended to route names to build Match.FilePath.
func WithDir(dir string) Option {
	return func(r *Router) {
		r.dir = dir
	}
}

// New scans fsys and creates a router over the discovered route files.
func New(fsys fs.FS, opts ...Option) (*Router, error) {
	r := &Router{
		fsys:       fsys,
		extensions: DefaultExtensions,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewDir creates a router over a directory on disk.
func NewDir(dir string, opts ...Option) (*Router, error) {
	return New(os.DirFS(dir), append([]Option{WithDir(dir)}, opts...)...)
}

// Reload rescans the file system and replaces the route table.
// On error the previous table is kept.
func (r *Router) Reload() error {
	routes, err := r.scan()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.routes = routes
	r.mu.Unlock()

	return nil
}

// Routes returns the discovered routes in matching order.
func (r *Router) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.routes)
}

// Match resolves the request path to a route.
func (r *Router) Match(req *http.Request) (Match, bool) {
	m, ok := r.MatchPath(req.URL.Path)
	if !ok {
		return Match{}, false
	}

	query := make(map[string]string, len(m.Params))
	for key, values := range req.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	for key, value := range m.Params {
		query[key] = value
	}
	m.Query = query

	return m, true
}

// MatchPath resolves a URL path to a route. Match.Query is left empty.
func (r *Router) MatchPath(urlPath string) (Match, bool) {
	parts := splitPath(urlPath)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.routes {
		params, ok := rt.match(parts)
		if !ok {
			continue
		}
		if params == nil {
			params = map[string]string{}
		}
		return Match{
			FilePath: rt.FilePath,
			Name:     rt.Name,
			Pattern:  rt.Pattern,
			Params:   params,
		}, true
	}

	return Match{}, false
}

func (r *Router) scan() ([]Route, error) {
	var routes []Route
	patterns := make(map[string]string)

	err := fs.WalkDir(r.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(name)
		if !slices.Contains(r.extensions, ext) {
			return nil
		}
		base := strings.TrimSuffix(name, ext)
		if strings.HasSuffix(base, "_test") {
			return nil
		}

		segments, pattern, err := parseRoute(base)
		if err != nil {
			return err
		}
		if prev, ok := patterns[pattern]; ok {
			return fmt.Errorf("%w: %q defined by %q and %q", ErrDuplicateRoute, pattern, prev, name)
		}
		patterns[pattern] = name

		routes = append(routes, Route{
			Pattern:  pattern,
			Name:     name,
			FilePath: filepath.Join(r.dir, filepath.FromSlash(name)),
			segments: segments,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRoute) || errors.Is(err, ErrDuplicateRoute) ||
			errors.Is(err, ErrDuplicateParam) || errors.Is(err, ErrCatchAllLast) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	slices.SortFunc(routes, func(a, b Route) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	return routes, nil
}
