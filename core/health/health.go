package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/logger"
	"github.com/dmitrymomot/filerouter/core/response"
)

// Liveness responds 200 "ALIVE".
func Liveness(*handler.Context) (handler.Response, error) {
	return response.String("ALIVE"), nil
}

// NoContent responds 204.
func NoContent(*handler.Context) (handler.Response, error) {
	return response.NoContent(), nil
}

// Readiness runs every check and responds 200 "READY", or fails with
// response.ErrServiceUnavailable on the first failing check.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}

	return func(ctx *handler.Context) (handler.Response, error) {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return nil, response.ErrServiceUnavailable
			}
		}

		return response.String("READY"), nil
	}
}
