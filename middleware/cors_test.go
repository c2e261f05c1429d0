package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter/core/response"
	"github.com/dmitrymomot/filerouter/middleware"
)

func corsRequest(method, origin string, preflightMethod string) *http.Request {
	req := httptest.NewRequest(method, "/api", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if preflightMethod != "" {
		req.Header.Set("Access-Control-Request-Method", preflightMethod)
	}
	return req
}

func TestCORSDefault(t *testing.T) {
	t.Parallel()

	ctx, w := newContext(corsRequest(http.MethodGet, "https://example.com", ""))
	require.NoError(t, middleware.CORS()(ctx))

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, []string{"Origin"}, w.Header().Values("Vary"))
}

func TestCORSAllowedOrigins(t *testing.T) {
	t.Parallel()

	mw := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://app.example.com"},
		AllowCredentials: true,
		ExposeHeaders:    []string{"X-Request-ID"},
	})

	t.Run("allowed origin", func(t *testing.T) {
		t.Parallel()

		ctx, w := newContext(corsRequest(http.MethodGet, "https://app.example.com", ""))
		require.NoError(t, mw(ctx))

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("other origin gets no cors headers", func(t *testing.T) {
		t.Parallel()

		ctx, w := newContext(corsRequest(http.MethodGet, "https://evil.example", ""))
		require.NoError(t, mw(ctx))

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	mw := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"https://app.example.com"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		MaxAge:       600,
	})

	t.Run("allowed", func(t *testing.T) {
		t.Parallel()

		req := corsRequest(http.MethodOptions, "https://app.example.com", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		ctx, w := newContext(req)
		require.NoError(t, mw(ctx))

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		ctx, _ := newContext(corsRequest(http.MethodOptions, "https://app.example.com", http.MethodDelete))
		assert.ErrorIs(t, mw(ctx), response.ErrForbidden)
	})

	t.Run("origin not allowed", func(t *testing.T) {
		t.Parallel()

		ctx, w := newContext(corsRequest(http.MethodOptions, "https://evil.example", http.MethodGet))
		assert.ErrorIs(t, mw(ctx), response.ErrForbidden)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestAllowOriginSubdomain(t *testing.T) {
	t.Parallel()

	allow := middleware.AllowOriginSubdomain("*.example.com")

	tests := []struct {
		origin  string
		allowed bool
	}{
		{origin: "https://example.com", allowed: true},
		{origin: "https://api.example.com", allowed: true},
		{origin: "http://api.example.com:8080", allowed: true},
		{origin: "https://example.com.evil.io", allowed: false},
		{origin: "https://notexample.com", allowed: false},
		{origin: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()

			got, ok := allow(tt.origin)
			assert.Equal(t, tt.allowed, ok)
			if tt.allowed {
				assert.Equal(t, tt.origin, got)
			}
		})
	}
}
