package fsroute

import "errors"

var (
	ErrScanFailed     = errors.New("failed to scan routes directory")
	ErrInvalidRoute   = errors.New("invalid route file name")
	ErrDuplicateRoute = errors.New("duplicate route pattern")
	ErrDuplicateParam = errors.New("route file name contains duplicate param key")
	ErrCatchAllLast   = errors.New("catch-all segment must be the last one in a route")
)
