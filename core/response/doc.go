// Package response provides response renderers and the application error type
// used by route handlers.
//
// Renderers return a handler.Response which the dispatcher executes as is, so the
// handler fully controls status, headers and body:
//
//	func create(ctx *handler.Context) (handler.Response, error) {
//		return response.JSONWithStatus(user, http.StatusCreated), nil
//	}
//
// # Application Errors
//
// HTTPError is the error handlers and middleware return deliberately. The
// dispatcher answers with its status and a JSON body {"error": message}:
//
//	if !allowed {
//		return nil, response.ErrForbidden // 403 {"error":"Forbidden"}
//	}
//	return nil, response.NewHTTPError("quota exceeded", http.StatusTooManyRequests)
//
// A zero status is reported as 500. Wrapped application errors are recognized
// as well:
//
//	return nil, fmt.Errorf("load account: %w", response.ErrNotFound)
//
// Any other error is answered with {"error": err.Error()} and the writer's
// default status.
package response
