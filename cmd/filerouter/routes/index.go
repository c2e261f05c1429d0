// Package routes holds the example route handlers. The .route marker files
// next to them define the URL patterns; main registers each handler under
// its marker name.
package routes

import (
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
	"github.com/dmitrymomot/filerouter/middleware"
)

// Handler serves GET /.
func Handler(ctx *handler.Context) (handler.Response, error) {
	requestID, _ := middleware.GetRequestID(ctx)
	return response.JSON(map[string]string{
		"status":     "ok",
		"request_id": requestID,
	}), nil
}
