// Package handler defines the request context and the function types shared by
// the dispatcher, the module loaders and route implementations.
//
// # Core Types
//
//	// Response renders the HTTP response
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// HandlerFunc handles a resolved route
//	type HandlerFunc func(ctx *Context) (Response, error)
//
//	// Middleware runs before the handler; an error aborts the request
//	type Middleware func(ctx *Context) error
//
// # Context
//
// A Context is created once per request by NewContext from the request, the
// response writer and the query and path parameters extracted by the router.
// Its identity is fixed for the request lifetime: middleware mutate it in place
// and the handler observes those changes.
//
//	func show(ctx *handler.Context) (handler.Response, error) {
//		id := ctx.Param("id")
//		if id == "" {
//			return nil, response.ErrBadRequest
//		}
//		return response.JSON(map[string]string{"id": id}), nil
//	}
//
// Context implements context.Context by delegating to the request context, so
// it can be passed directly to database drivers and HTTP clients:
//
//	rows, err := db.QueryContext(ctx, "SELECT ...")
//
// # Middleware
//
// Middleware are plain functions observing or mutating the context:
//
//	func requireJSON(ctx *handler.Context) error {
//		if ctx.Request().Header.Get("Content-Type") != "application/json" {
//			return response.NewHTTPError("unsupported media type", http.StatusUnsupportedMediaType)
//		}
//		return nil
//	}
//
// Request-scoped values are stored with SetValue and read back with Value:
//
//	ctx.SetValue(userKey{}, user)
//	user, _ := ctx.Value(userKey{}).(*User)
package handler
