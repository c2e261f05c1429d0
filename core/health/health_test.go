package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/health"
	"github.com/dmitrymomot/filerouter/core/response"
)

func run(t *testing.T, h handler.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	w := httptest.NewRecorder()
	ctx := handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/health", nil), nil, nil)

	resp, err := h(ctx)
	if err != nil {
		return w, err
	}
	require.NoError(t, response.Render(ctx, resp))
	return w, nil
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	w, err := run(t, health.Liveness)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	w, err := run(t, health.NoContent)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("db down") }

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		w, err := run(t, health.Readiness(nil, ok, ok))
		require.NoError(t, err)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()

		var calls int
		counted := func(context.Context) error {
			calls++
			return nil
		}

		_, err := run(t, health.Readiness(nil, fail, counted))
		assert.ErrorIs(t, err, response.ErrServiceUnavailable)
		assert.Zero(t, calls, "checks stop at the first failure")
	})
}
