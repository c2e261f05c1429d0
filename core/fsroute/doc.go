// Package fsroute resolves request paths to route files laid out with
// Next.js-style file-system conventions.
//
// Routes are marker files under a root directory. Their names carry the
// route pattern, which Go source file names cannot, so the handler code
// lives in ordinary Go files registered under the marker names:
//
//	routes/
//	├── index.route              → /
//	├── about.route              → /about
//	├── users/
//	│   ├── index.route          → /users
//	│   └── [id].route           → /users/:id
//	├── docs/
//	│   └── [...slug].route      → /docs/*slug (one or more segments)
//	└── shop/
//	    └── [[...path]].route    → /shop and /shop/*path
//
// When several routes match a path the most specific wins: static segments
// beat params, params beat catch-alls, catch-alls beat optional catch-alls.
//
// Usage:
//
//	r, err := fsroute.NewDir("./routes")
//	if err != nil {
//		return err
//	}
//
//	m, ok := r.Match(req)
//	// m.FilePath == "routes/users/[id].route"
//	// m.Params["id"] == "42"
//	// m.Query holds URL query values and the path params
//
// Any fs.FS can be scanned, which keeps tests free of disk fixtures:
//
//	r, err := fsroute.New(fstest.MapFS{
//		"users/[id].route": &fstest.MapFile{},
//	})
//
// Hidden files and directories, files with a "_test" suffix and files whose
// extension is not listed by WithExtensions (default ".route") are ignored.
package fsroute
