package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filerouter/cmd/filerouter/routes/users"
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		id         string
		query      map[string]string
		wantStatus int
		wantBody   string
		wantErr    int
	}{
		{name: "get", method: http.MethodGet, id: "7", wantStatus: http.StatusOK, wantBody: `{"id":7,"name":"user-7"}`},
		{name: "post", method: http.MethodPost, id: "7", query: map[string]string{"name": "ann"}, wantStatus: http.StatusCreated, wantBody: `{"id":7,"name":"ann"}`},
		{name: "invalid id", method: http.MethodGet, id: "abc", wantErr: http.StatusBadRequest},
		{name: "unknown id", method: http.MethodGet, id: "101", wantErr: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/users/"+tt.id, nil)
			ctx := handler.NewContext(w, req, tt.query, map[string]string{"id": tt.id})

			resp, err := users.Handler(ctx)
			if tt.wantErr != 0 {
				httpErr, ok := response.AsHTTPError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr, httpErr.StatusCode())
				return
			}

			require.NoError(t, err)
			require.NoError(t, response.Render(ctx, resp))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
