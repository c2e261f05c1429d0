package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter/core/response"
	"github.com/dmitrymomot/filerouter/middleware"
)

func TestBodyLimitContentLength(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("a", 2048)))
	ctx, _ := newContext(req)

	err := middleware.BodyLimitWithSize(middleware.KB)(ctx)
	require.Error(t, err)

	httpErr, ok := response.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.StatusCode())
	assert.Contains(t, httpErr.Message, "2.00 KB")
	assert.Contains(t, httpErr.Message, "1.00 KB")
}

func TestBodyLimitWithinLimit(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("hello"))
	ctx, _ := newContext(req)

	require.NoError(t, middleware.BodyLimitWithSize(5)(ctx))

	body, err := io.ReadAll(ctx.Request().Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestBodyLimitStreamingBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("a", 100)))
	req.ContentLength = -1
	ctx, _ := newContext(req)

	require.NoError(t, middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		MaxSize:                   10,
		DisableContentLengthCheck: true,
	})(ctx))

	body, err := io.ReadAll(ctx.Request().Body)
	assert.ErrorIs(t, err, middleware.ErrBodyTooLarge)
	assert.Len(t, body, 10)
}

func TestBodyLimitContentTypeLimit(t *testing.T) {
	t.Parallel()

	mw := middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		MaxSize:          10,
		ContentTypeLimit: map[string]int64{"application/json": 100},
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 50)))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx, _ := newContext(req)
	assert.NoError(t, mw(ctx))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 50)))
	req.Header.Set("Content-Type", "text/plain")
	ctx, _ = newContext(req)

	httpErr, ok := response.AsHTTPError(mw(ctx))
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Status)
}
