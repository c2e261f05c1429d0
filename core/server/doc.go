// Package server wraps http.Server with a synchronous bind, background
// serving and graceful shutdown.
//
// Listen binds the address before returning, so callers can read the actual
// address (port 0 picks a free port) and treat the Server as a handle:
//
//	srv := server.New(":0", server.WithLogger(log))
//	if err := srv.Listen(handler); err != nil {
//		return err
//	}
//	fmt.Println("listening on", srv.Addr())
//	defer srv.Stop()
//
// Start blocks until the context is canceled; Run adapts it to errgroup and
// stops the server gracefully on cancellation:
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//	return eg.Wait()
//
// Configuration can be loaded from the environment with core/config:
//
//	var cfg server.Config // SERVER_ADDR, SERVER_READ_TIMEOUT, ...
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg)
package server
