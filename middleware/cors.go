package middleware

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// AllowOrigins lists allowed origins. Empty or "*" allows any origin.
	AllowOrigins []string

	// AllowMethods lists methods allowed in preflight requests.
	AllowMethods []string

	// AllowHeaders lists request headers allowed in preflight requests.
	AllowHeaders []string

	// ExposeHeaders lists response headers readable by the browser.
	ExposeHeaders []string

	// AllowCredentials sets Access-Control-Allow-Credentials (never with "*").
	AllowCredentials bool

	// MaxAge is the preflight cache duration in seconds.
	MaxAge int

	// AllowOriginFunc decides on the origin dynamically and returns the value
	// for Access-Control-Allow-Origin. Takes priority over AllowOrigins.
	AllowOriginFunc func(origin string) (string, bool)
}

// CORS creates a CORS middleware allowing any origin.
func CORS() handler.Middleware {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithConfig creates a CORS middleware with custom configuration.
//
// Middleware cannot answer a request on its own, so a preflight only gets its
// Access-Control-* headers here and the matched route still responds to the
// OPTIONS request (response.NoContent is enough). A preflight for a
// disallowed origin or method is rejected with response.ErrForbidden.
func CORSWithConfig(cfg CORSConfig) handler.Middleware {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	}

	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Language",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowOrigins := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		allowOrigins[origin] = true
	}

	return func(ctx *handler.Context) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return nil
		}

		req := ctx.Request()
		origin := req.Header.Get("Origin")

		var allowedOrigin string
		allowed := false

		switch {
		case cfg.AllowOriginFunc != nil:
			allowedOrigin, allowed = cfg.AllowOriginFunc(origin)
		case len(cfg.AllowOrigins) == 0 || allowOrigins["*"]:
			allowedOrigin, allowed = "*", true
		case allowOrigins[origin]:
			allowedOrigin, allowed = origin, true
		}

		headers := ctx.ResponseWriter().Header()
		headers.Add("Vary", "Origin")

		requestMethod := req.Header.Get("Access-Control-Request-Method")
		if req.Method == http.MethodOptions && requestMethod != "" {
			headers.Add("Vary", "Access-Control-Request-Method")
			headers.Add("Vary", "Access-Control-Request-Headers")

			if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
				return response.ErrForbidden
			}

			headers.Set("Access-Control-Allow-Methods", allowMethods)
			if req.Header.Get("Access-Control-Request-Headers") != "" {
				headers.Set("Access-Control-Allow-Headers", allowHeaders)
			}
			if cfg.MaxAge > 0 {
				headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
		}

		if !allowed {
			return nil
		}

		headers.Set("Access-Control-Allow-Origin", allowedOrigin)
		if cfg.AllowCredentials && allowedOrigin != "*" {
			headers.Set("Access-Control-Allow-Credentials", "true")
		}
		if exposeHeaders != "" {
			headers.Set("Access-Control-Expose-Headers", exposeHeaders)
		}

		return nil
	}
}

// AllowOriginSubdomain allows the domain and any of its subdomains.
func AllowOriginSubdomain(domain string) func(origin string) (string, bool) {
	domain = strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(domain, "*."), "."))
	suffix := "." + domain

	return func(origin string) (string, bool) {
		if origin == "" {
			return "", false
		}

		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return "", false
		}

		host := strings.ToLower(u.Hostname())
		if host == domain || strings.HasSuffix(host, suffix) {
			return origin, true
		}
		return "", false
	}
}
