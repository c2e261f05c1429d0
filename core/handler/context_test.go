package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter/core/handler"
)

type ctxKey struct{}

func TestContext_Deadline(t *testing.T) {
	t.Parallel()

	t.Run("with_deadline", func(t *testing.T) {
		t.Parallel()

		deadline := time.Now().Add(5 * time.Second)
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		defer cancel()

		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		c := handler.NewContext(httptest.NewRecorder(), req, nil, nil)

		gotDeadline, ok := c.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, deadline, gotDeadline, time.Millisecond)
	})

	t.Run("without_deadline", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := handler.NewContext(httptest.NewRecorder(), req, nil, nil)

		_, ok := c.Deadline()
		assert.False(t, ok)
	})
}

func TestContext_DoneAndErr(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	c := handler.NewContext(httptest.NewRecorder(), req, nil, nil)

	select {
	case <-c.Done():
		t.Fatal("Done channel should not be closed initially")
	default:
	}
	assert.NoError(t, c.Err())

	cancel()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel should be closed after cancel")
	}
	assert.ErrorIs(t, c.Err(), context.Canceled)
}

func TestContext_Values(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := handler.NewContext(httptest.NewRecorder(), req, nil, nil)

	assert.Nil(t, c.Value(ctxKey{}))

	c.SetValue(ctxKey{}, "value")
	assert.Equal(t, "value", c.Value(ctxKey{}))
	assert.Equal(t, "value", c.Request().Context().Value(ctxKey{}), "request should carry the value")
	assert.Nil(t, req.Context().Value(ctxKey{}), "original request must not be mutated")
}

func TestContext_QueryAndParams(t *testing.T) {
	t.Parallel()

	t.Run("passes maps through", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users/42?sort=asc", nil)
		w := httptest.NewRecorder()
		query := map[string]string{"sort": "asc", "id": "42"}
		params := map[string]string{"id": "42"}

		c := handler.NewContext(w, req, query, params)

		assert.Same(t, req, c.Request())
		assert.Equal(t, w, c.ResponseWriter())
		assert.Equal(t, "asc", c.Query("sort"))
		assert.Equal(t, "42", c.Query("id"))
		assert.Equal(t, "42", c.Param("id"))
		assert.Empty(t, c.Param("missing"))
		assert.Equal(t, query, c.QueryParams())
		assert.Equal(t, params, c.Params())
	})

	t.Run("nil maps read as empty", func(t *testing.T) {
		t.Parallel()

		c := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil, nil)

		assert.Empty(t, c.Query("a"))
		assert.Empty(t, c.Param("a"))
		assert.Empty(t, c.QueryParams())
		assert.Empty(t, c.Params())
	})

	t.Run("copies are detached", func(t *testing.T) {
		t.Parallel()

		c := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil),
			map[string]string{"a": "1"}, map[string]string{"b": "2"})

		q := c.QueryParams()
		q["a"] = "changed"
		p := c.Params()
		p["b"] = "changed"

		assert.Equal(t, "1", c.Query("a"))
		assert.Equal(t, "2", c.Param("b"))
	})

	t.Run("set param", func(t *testing.T) {
		t.Parallel()

		c := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil, nil)
		c.SetParam("slug", "hello")
		require.Equal(t, "hello", c.Param("slug"))
	})
}
