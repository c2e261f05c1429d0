// Package loader loads route handlers for resolved route files.
//
// A Loader turns a resolved file path into a Module. Every export is classified
// once, by Classify, at the loader boundary: a Module either carries a
// handler.HandlerFunc or it is non-callable. Callers branch on
// Module.Handler instead of probing exports again.
//
// Two loaders are provided.
//
// Registry keeps exports registered at compile time, keyed by file names
// relative to the routes directory:
//
//	reg := loader.NewRegistry("./routes")
//	reg.MustRegister("index.go", routes.Index)
//	reg.MustRegister("users/[id].route", users.Show)
//
// Plugin opens Go plugins and looks up their "Handler" symbol:
//
//	// go build -buildmode=plugin -o routes/users/[id].so ./plugins/users
//	l := loader.NewPlugin()
//	m, err := l.Load(ctx, "routes/users/[id].so")
//
// LoaderFunc adapts a function, which is handy for stubs in tests.
package loader
