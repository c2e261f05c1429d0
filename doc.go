// Package filerouter is a minimal HTTP request-dispatch layer built on
// file-system routing.
//
// An App resolves each request to a route file, loads the handler that file
// exports, runs the registered middleware and the handler against a shared
// per-request context, and translates returned errors into JSON responses.
//
// # Routes
//
// Route files live under a routes directory (default "./routes") and follow
// these conventions:
//
//	routes/index.route              → /
//	routes/users/index.route        → /users
//	routes/users/[id].route         → /users/:id
//	routes/docs/[...slug].route     → /docs/* (one or more segments)
//	routes/shop/[[...path]].route   → /shop and /shop/* (zero or more segments)
//
// Route files are markers: the Go toolchain rejects source files named like
// "[id].go", so handlers live in ordinary Go files.
//
// Static segments win over parameters, parameters over catch-alls. See the
// core/fsroute package for details.
//
// # Handlers
//
// Go cannot import source files at run time, so handlers are provided by a
// loader.Loader keyed by the resolved route file path. The default loader is an
// empty loader.Registry rooted at the routes directory; route packages
// register their handlers into it:
//
//	reg := loader.NewRegistry("./routes")
//	reg.MustRegister("users/[id].route", users.Show)
//
//	app, err := filerouter.New(filerouter.WithLoader(reg))
//	if err != nil {
//		return err
//	}
//	app.Use(middleware.RequestID())
//
//	srv, err := app.Listen(8080)
//
// A handler returns a Response that fully controls status, headers and body:
//
//	func Show(ctx *handler.Context) (handler.Response, error) {
//		if ctx.Param("id") == "" {
//			return nil, response.ErrBadRequest
//		}
//		return response.JSONWithStatus(user, http.StatusCreated), nil
//	}
//
// Loaded handlers are cached per route file unless WithCacheRoutes(false) is
// set. A route module whose export is not a handler is served by the
// not-found handler.
//
// # Errors
//
// Errors returned or panicked by handler resolution, middleware or the
// handler are written as {"error": "<message>"}:
//
//   - response.HTTPError sets the status (500 when zero);
//   - any other error keeps the default 200 status.
//
// Requests that match no route get 404 {"error":"NotFound"} without running
// middleware.
package filerouter
