package filerouter

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/filerouter/core/fsroute"
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/logger"
	"github.com/dmitrymomot/filerouter/core/response"
)

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	match, ok := a.resolver.Match(r)
	if !ok {
		// Unmatched paths bypass middleware and handler resolution.
		if err := response.JSONError(NotFoundMessage, http.StatusNotFound)(ww, r); err != nil {
			a.logger.ErrorContext(r.Context(), "failed to write not found response",
				logger.Component("dispatcher"),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
		}
		return
	}

	ctx := handler.NewContext(ww, r, match.Query, match.Params)

	resp, err := a.dispatch(ctx, match)
	if err == nil {
		err = a.render(ctx, resp)
	}
	if err != nil {
		a.handleError(ctx, ww, match, err)
	}
}

// dispatch resolves the handler, runs the middleware chain and the handler.
// Panics are converted to errors.
func (a *App) dispatch(ctx *handler.Context, match fsroute.Match) (resp handler.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, &panicError{value: p, stack: debug.Stack()}
		}
	}()

	h, err := a.resolveHandler(ctx, match)
	if err != nil {
		return nil, err
	}

	if err := runChain(ctx, a.middlewares); err != nil {
		return nil, err
	}

	return h(ctx)
}

// render writes the handler's response unmodified.
func (a *App) render(ctx *handler.Context, resp handler.Response) (err error) {
	if resp == nil {
		return ErrNilResponse
	}

	defer func() {
		if p := recover(); p != nil {
			err = &panicError{value: p, stack: debug.Stack()}
		}
	}()

	return resp(ctx.ResponseWriter(), ctx.Request())
}

// handleError translates an error into {"error": message}. Application errors
// set their status; other errors keep the writer's default status.
func (a *App) handleError(ctx *handler.Context, ww *responseWriter, match fsroute.Match, err error) {
	r := ctx.Request()
	f := classify(err)

	attrs := []any{
		logger.Component("dispatcher"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Route(match.Pattern),
		logger.Error(err),
	}

	var pe *panicError
	if errors.As(err, &pe) {
		attrs = append(attrs, logger.Key("stack", string(pe.stack)))
	}

	if ww.Written() {
		a.logger.ErrorContext(ctx, "request failed after response was written",
			append(attrs, logger.StatusCode(ww.Status()))...)
		return
	}

	if f.application {
		a.logger.WarnContext(ctx, "request failed", append(attrs, logger.StatusCode(f.status))...)
	} else {
		a.logger.ErrorContext(ctx, "request failed with unexpected error", attrs...)
	}

	if werr := response.JSONError(f.message, f.status)(ww, r); werr != nil {
		a.logger.ErrorContext(ctx, "failed to write error response",
			logger.Component("dispatcher"),
			logger.Error(werr),
		)
	}
}
