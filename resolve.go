package filerouter

import (
	"context"

	"github.com/dmitrymomot/filerouter/core/fsroute"
	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/logger"
)

// resolveHandler returns the handler for a matched route, loading the route
// module on a cache miss. A module without a handler resolves to the
// not-found handler and is not cached. Load errors are returned unchanged.
func (a *App) resolveHandler(ctx context.Context, match fsroute.Match) (handler.HandlerFunc, error) {
	if a.cacheRoutes {
		if h, ok := a.cache.get(match.FilePath); ok {
			return h, nil
		}
	}

	module, err := a.loader.Load(ctx, match.FilePath)
	if err != nil {
		return nil, err
	}

	h, ok := module.Handler()
	if !ok {
		a.logger.WarnContext(ctx, "route module does not export a handler",
			logger.Component("resolver"),
			logger.File(match.FilePath),
		)
		return a.notFound, nil
	}

	if a.cacheRoutes {
		a.cache.set(match.FilePath, h)
	}

	a.logger.DebugContext(ctx, "route module loaded",
		logger.Component("resolver"),
		logger.File(match.FilePath),
		logger.Key("cached", a.cacheRoutes),
	)

	return h, nil
}
