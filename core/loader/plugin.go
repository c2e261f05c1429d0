package loader

import (
	"context"
	"fmt"
	"plugin"
)

// DefaultSymbol is the exported symbol looked up in route plugins.
const DefaultSymbol = "Handler"

// Plugin loads route handlers from Go plugins built with
// `go build -buildmode=plugin`. Opened plugins are kept by the Go runtime, so
// a changed file is only picked up by a new process.
type Plugin struct {
	symbol string
}

// PluginOption configures a Plugin loader.
type PluginOption func(*Plugin)

// WithSymbol sets the exported symbol holding the route handler.
func WithSymbol(name string) PluginOption {
	return func(p *Plugin) {
		if name != "" {
			p.symbol = name
		}
	}
}

// NewPlugin creates a plugin loader.
func NewPlugin(opts ...PluginOption) *Plugin {
	p := &Plugin{symbol: DefaultSymbol}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load implements Loader.
func (p *Plugin) Load(_ context.Context, path string) (Module, error) {
	plug, err := plugin.Open(path)
	if err != nil {
		return Module{}, fmt.Errorf("%w: %s: %w", ErrPluginOpen, path, err)
	}

	sym, err := plug.Lookup(p.symbol)
	if err != nil {
		return Module{}, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, p.symbol, path)
	}

	return Classify(path, sym), nil
}
