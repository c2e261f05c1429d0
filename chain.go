package filerouter

import "github.com/dmitrymomot/filerouter/core/handler"

// runChain runs middleware one after another in registration order.
// The first error stops the chain.
func runChain(ctx *handler.Context, middlewares []handler.Middleware) error {
	for _, mw := range middlewares {
		if err := mw(ctx); err != nil {
			return err
		}
	}
	return nil
}
