package middleware

import (
	"errors"
	"fmt"
	"io"
	"mime"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

// ErrBodyTooLarge is returned by the request body reader once the limit is exceeded.
var ErrBodyTooLarge = errors.New("request body too large")

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
	GB       = 1024 * MB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// MaxSize is the maximum allowed size in bytes (default: 4MB)
	MaxSize int64

	// ContentTypeLimit allows setting different limits per content type
	// Example: {"application/json": 1MB, "multipart/form-data": 10MB}
	ContentTypeLimit map[string]int64

	// DisableContentLengthCheck skips the declared Content-Length check
	// and only enforces the limit during body reading
	DisableContentLengthCheck bool
}

// BodyLimit creates a body limit middleware with default configuration (4MB limit).
func BodyLimit() handler.Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize(maxSize int64) handler.Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig creates a body limit middleware with custom configuration.
// Requests declaring a larger Content-Length are rejected with 413 before the
// handler runs; bodies without a declared length fail with ErrBodyTooLarge on read.
func BodyLimitWithConfig(cfg BodyLimitConfig) handler.Middleware {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 4 * MB
	}

	return func(ctx *handler.Context) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return nil
		}

		req := ctx.Request()

		maxSize := cfg.MaxSize
		if cfg.ContentTypeLimit != nil {
			if mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type")); err == nil {
				if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
					maxSize = limit
				}
			}
		}

		if !cfg.DisableContentLengthCheck && req.ContentLength > maxSize {
			return response.ErrRequestEntityTooLarge.WithMessage(fmt.Sprintf(
				"Request body too large. Size: %s, Maximum allowed: %s",
				formatBytes(req.ContentLength), formatBytes(maxSize)))
		}

		if req.Body != nil {
			req.Body = &limitedReader{reader: req.Body, limit: maxSize}
		}

		return nil
	}
}

// limitedReader wraps an io.ReadCloser to enforce a size limit
type limitedReader struct {
	reader io.ReadCloser
	limit  int64
	read   int64
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if lr.read > lr.limit {
		return 0, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, lr.limit)
	}

	// Read one byte past the limit to tell an exact-size body from an oversized one.
	remaining := lr.limit - lr.read + 1
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := lr.reader.Read(p)
	lr.read += int64(n)

	if lr.read > lr.limit {
		return n - int(lr.read-lr.limit), fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, lr.limit)
	}

	return n, err
}

func (lr *limitedReader) Close() error {
	return lr.reader.Close()
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
