package middleware

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

// ErrNoAuthSource is returned when BasicAuthConfig has neither ValidateFunc
// nor Credentials configured.
var ErrNoAuthSource = errors.New("basic auth: at least one of ValidateFunc or Credentials must be set")

// basicAuthUserKey stores the authenticated username in the request context.
type basicAuthUserKey struct{}

// BasicAuthConfig configures the Basic Auth middleware (RFC 7617).
type BasicAuthConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *handler.Context) bool

	// Realm is sent in the WWW-Authenticate header (default: "Restricted").
	Realm string

	// ValidateFunc validates credentials dynamically.
	// Takes priority over Credentials when both are set.
	ValidateFunc func(ctx *handler.Context, username, password string) bool

	// Credentials maps usernames to bcrypt password hashes.
	Credentials map[string]string
}

// BasicAuth creates an HTTP Basic Authentication middleware.
// Missing or invalid credentials abort the request with response.ErrUnauthorized.
// It returns ErrNoAuthSource if both ValidateFunc and Credentials are empty.
func BasicAuth(cfg BasicAuthConfig) (handler.Middleware, error) {
	if cfg.ValidateFunc == nil && len(cfg.Credentials) == 0 {
		return nil, ErrNoAuthSource
	}

	realm := cfg.Realm
	if realm == "" {
		realm = "Restricted"
	}
	wwwAuthenticate := fmt.Sprintf("Basic realm=%q", realm)

	// Unknown users are checked against a dummy hash so the response time
	// does not reveal whether a username exists.
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("filerouter"), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("basic auth: %w", err)
	}

	validate := cfg.ValidateFunc
	if validate == nil {
		credentials := cfg.Credentials
		validate = func(_ *handler.Context, username, password string) bool {
			hash, exists := credentials[username]
			if !exists {
				hash = string(dummyHash)
			}
			match := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
			return exists && match
		}
	}

	return func(ctx *handler.Context) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return nil
		}

		username, password, ok := ctx.Request().BasicAuth()
		if !ok || !validate(ctx, username, password) {
			ctx.ResponseWriter().Header().Set("WWW-Authenticate", wwwAuthenticate)
			return response.ErrUnauthorized
		}

		ctx.SetValue(basicAuthUserKey{}, username)
		return nil
	}, nil
}

// GetBasicAuthUser returns the username authenticated by BasicAuth.
func GetBasicAuthUser(ctx *handler.Context) (string, bool) {
	user, ok := ctx.Value(basicAuthUserKey{}).(string)
	return user, ok
}
