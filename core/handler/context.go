package handler

import (
	"context"
	"maps"
	"net/http"
	"time"
)

// Context is the per-request context passed to middleware and handlers.
// It delegates all context.Context methods to the request's context.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	query  map[string]string
	params map[string]string
}

// NewContext creates a request context from the resolved query and path parameters.
// The maps are used verbatim; nil maps behave as empty ones.
func NewContext(w http.ResponseWriter, r *http.Request, query, params map[string]string) *Context {
	return &Context{
		w:      w,
		r:      r,
		query:  query,
		params: params,
	}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with this context for key, or nil if no value is associated with key.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a value in the request's context.
// The value can be retrieved using the Value method.
func (c *Context) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Query returns the query parameter for the given key.
// Path parameters are merged into the query map by the file-system router.
func (c *Context) Query(key string) string {
	if c.query == nil {
		return ""
	}
	return c.query[key]
}

// QueryParams returns a copy of all query parameters.
func (c *Context) QueryParams() map[string]string {
	return maps.Clone(c.query)
}

// Param returns the value of the path parameter for the given key.
func (c *Context) Param(key string) string {
	if c.params == nil {
		return ""
	}
	return c.params[key]
}

// Params returns a copy of all path parameters.
func (c *Context) Params() map[string]string {
	return maps.Clone(c.params)
}

// SetParam overrides a path parameter for the rest of the request.
func (c *Context) SetParam(key, value string) {
	if c.params == nil {
		c.params = make(map[string]string)
	}
	c.params[key] = value
}
