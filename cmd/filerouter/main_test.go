package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter"
	"github.com/dmitrymomot/filerouter/core/logger"
	"github.com/dmitrymomot/filerouter/middleware"
)

func TestRoutesAreRegistered(t *testing.T) {
	t.Parallel()

	reg := newRegistry("routes", logger.Nop())

	app, err := filerouter.New(filerouter.WithRoutesDir("routes"), filerouter.WithLoader(reg))
	require.NoError(t, err)

	routes := app.Routes()
	require.NotEmpty(t, routes)

	var files []string
	for _, rt := range routes {
		files = append(files, rt.FilePath)
	}
	assert.ElementsMatch(t, reg.Paths(), files, "every route file has a handler and vice versa")
}

func TestExampleApp(t *testing.T) {
	t.Parallel()

	app, err := filerouter.New(
		filerouter.WithRoutesDir("routes"),
		filerouter.WithLoader(newRegistry("routes", logger.Nop())),
	)
	require.NoError(t, err)
	app.Use(middleware.RequestID(), middleware.SecurityHeaders(), middleware.CORS())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "index", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "user", method: http.MethodGet, target: "/users/7", wantStatus: http.StatusOK, wantBody: `{"id":7,"name":"user-7"}`},
		{name: "create user", method: http.MethodPost, target: "/users/7?name=ann", wantStatus: http.StatusCreated, wantBody: `{"id":7,"name":"ann"}`},
		{name: "bad user id", method: http.MethodGet, target: "/users/abc", wantStatus: http.StatusBadRequest, wantBody: `{"error":"invalid user id"}`},
		{name: "docs", method: http.MethodGet, target: "/docs/guide/install", wantStatus: http.StatusOK},
		{name: "liveness", method: http.MethodGet, target: "/health/live", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, target: "/health/ready", wantStatus: http.StatusOK},
		{name: "unknown", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound, wantBody: `{"error":"NotFound"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			app.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if tt.wantStatus != http.StatusNotFound {
				assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
				assert.Contains(t, w.Header().Values("Vary"), "Origin")
				assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			}
		})
	}
}
