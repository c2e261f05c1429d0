package filerouter

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/filerouter/core/response"
)

// NotFoundMessage is the error message of the built-in 404 payload.
const NotFoundMessage = "NotFound"

var (
	ErrNilResponse = errors.New("handler returned nil response")
	ErrRoutesDir   = errors.New("failed to load routes")
)

// failure is the outcome of classifying an error at the dispatch boundary.
// Application errors carry their own status; any other error keeps the
// writer's default status (zero here).
type failure struct {
	application bool
	status      int
	message     string
}

func classify(err error) failure {
	if httpErr, ok := response.AsHTTPError(err); ok {
		return failure{
			application: true,
			status:      httpErr.StatusCode(),
			message:     httpErr.Message,
		}
	}
	return failure{message: err.Error()}
}

// panicError wraps a value recovered from a panicking middleware or handler.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Unwrap allows errors.Is/As to see a panicked error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
