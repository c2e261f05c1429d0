// Package middleware provides built-in middleware for filerouter apps.
//
// Middleware run after the route is resolved and before the handler. They
// share the request context with the handler and abort the request by
// returning an error; application errors from core/response set the status.
//
//	app.Use(
//		middleware.RequestID(),
//		middleware.SecurityHeaders(),
//		middleware.CORS(),
//		middleware.Logging(),
//		middleware.BodyLimitWithSize(1*middleware.MB),
//	)
//
//	auth, err := middleware.BasicAuth(middleware.BasicAuthConfig{
//		Credentials: map[string]string{"admin": "$2a$10$..."},
//	})
//	if err != nil {
//		return err
//	}
//	app.Use(auth)
//
// CORS only sets headers: the matched route answers preflight OPTIONS
// requests itself.
//
// Request IDs are available to handlers through GetRequestID and the
// authenticated user through GetBasicAuthUser.
package middleware
