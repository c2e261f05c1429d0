package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter"
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/loader"
	"github.com/dmitrymomot/filerouter/core/response"
	"github.com/dmitrymomot/filerouter/middleware"
)

func TestMiddlewareWithApp(t *testing.T) {
	t.Parallel()

	reg := loader.NewRegistry("routes")
	reg.MustRegister("admin.route", func(ctx *handler.Context) (handler.Response, error) {
		user, _ := middleware.GetBasicAuthUser(ctx)
		return response.String("hello " + user), nil
	})

	app, err := filerouter.New(
		filerouter.WithRoutesDir("routes"),
		filerouter.WithRoutesFS(fstest.MapFS{"admin.route": {Data: []byte("package routes")}}),
		filerouter.WithLoader(reg),
	)
	require.NoError(t, err)

	auth, err := middleware.BasicAuth(middleware.BasicAuthConfig{
		ValidateFunc: func(ctx *handler.Context, username, password string) bool {
			return username == "admin" && password == "secret"
		},
	})
	require.NoError(t, err)

	app.Use(middleware.RequestID(), auth)

	t.Run("authorized", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.SetBasicAuth("admin", "secret")
		w := httptest.NewRecorder()
		app.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello admin", w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("unauthorized keeps request id", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, `Basic realm="Restricted"`, w.Header().Get("WWW-Authenticate"))
	})
}
