// Package logger provides structured logging utilities built on log/slog.
//
// Create loggers with New and environment presets:
//
//	log := logger.New(logger.WithDevelopment("filerouter"))
//	log := logger.New(logger.WithProduction("filerouter"), logger.WithLevel(slog.LevelWarn))
//
// Context values can be attached to every record:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "dispatching")
//
// Attribute helpers keep keys consistent across the code base and return an
// empty attribute for zero values:
//
//	log.Error("route handler failed",
//		logger.Component("dispatcher"),
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Route(match.Pattern),
//		logger.Error(err),
//	)
package logger
