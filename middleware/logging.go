package middleware

import (
	"log/slog"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogQuery adds the merged query map to the log record
	LogQuery bool

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
// It logs the request once the route is resolved, before the handler runs.
// Register it after RequestID to include the request ID.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx *handler.Context) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return nil
		}

		req := ctx.Request()
		requestID, _ := GetRequestID(ctx)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("request"),
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
			logger.RequestID(requestID),
			logger.Params("params", ctx.Params()),
		}

		if cfg.LogQuery {
			attrs = append(attrs, logger.Params("query", ctx.QueryParams()))
		}

		cfg.Logger.LogAttrs(ctx, cfg.LogLevel, "HTTP request", attrs...)

		return nil
	}
}
