package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/filerouter/core/handler"
)

// JSON creates an application/json response with 200 OK status.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
// Zero status means 200 OK, or 204 No Content for nil data.
// JSON encoding is performed directly to the response writer.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}

		w.WriteHeader(status)

		// No body for 204 or 304
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}

		return json.NewEncoder(w).Encode(v)
	}
}

// ErrorBody is the JSON payload of every error response: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSONError creates an error payload response.
// Status 0 leaves the status to the writer's default (200 OK).
func JSONError(message string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if status != 0 {
			w.WriteHeader(status)
		}
		return json.NewEncoder(w).Encode(ErrorBody{Error: message})
	}
}
