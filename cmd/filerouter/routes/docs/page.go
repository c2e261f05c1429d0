// Package docs holds the handler of docs/[...slug].route.
package docs

import (
	"strings"

	"github.com/dmitrymomot/filerouter/core/handler"
	"github.com/dmitrymomot/filerouter/core/response"
)

// Handler serves every path under /docs as plain text.
func Handler(ctx *handler.Context) (handler.Response, error) {
	slug := ctx.Param("slug")
	return response.String("docs: " + strings.ReplaceAll(slug, "/", " > ")), nil
}
