package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// The dispatcher renders it as is; rendering errors are handled by the dispatcher.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a resolved route and produces a Response.
// A non-nil error aborts the request and is translated by the dispatcher.
type HandlerFunc func(ctx *Context) (Response, error)

// Middleware runs before the handler for every resolved route.
// It may read or mutate the context; a non-nil error aborts the remaining chain
// and the handler.
type Middleware func(ctx *Context) error
