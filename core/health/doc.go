// Package health provides route handlers for service health monitoring.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all dependencies are available
//   - NoContent: 204 for minimal overhead
//
// Register them under route files like any other handler:
//
//	reg.MustRegister("health/live.go", health.Liveness)
//	reg.MustRegister("health/ready.go", health.Readiness(log, db.Ping))
//
// Dependency checks must follow the func(context.Context) error signature.
package health
