package server_test

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/filerouter/core/server"
)

func helloHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
}

func get(t *testing.T, addr string) string {
	t.Helper()

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServerListenAndStop(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	require.NoError(t, srv.Listen(helloHandler()))
	assert.True(t, srv.Running())
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr(), "Addr should report the bound port")

	assert.Equal(t, "hello", get(t, srv.Addr()))

	assert.ErrorIs(t, srv.Listen(helloHandler()), server.ErrServerAlreadyRunning)

	require.NoError(t, srv.Stop())
	assert.NoError(t, srv.Wait())
	assert.False(t, srv.Running())

	assert.NoError(t, srv.Stop(), "stopping a stopped server is a no-op")
}

func TestServerListenAddressInUse(t *testing.T) {
	t.Parallel()

	first := server.New("127.0.0.1:0")
	require.NoError(t, first.Listen(helloHandler()))
	defer first.Stop()

	second := server.New(first.Addr())
	assert.ErrorIs(t, second.Listen(helloHandler()), server.ErrListen)
}

func TestServerWaitWithoutStart(t *testing.T) {
	t.Parallel()

	assert.NoError(t, server.New(":0").Wait())
}

func TestServerStartCanceled(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx, helloHandler())
	}()

	require.Eventually(t, srv.Running, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}

	require.NoError(t, srv.Stop())
}

func TestServerRunWithErrgroup(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(egCtx, helloHandler()))

	require.Eventually(t, srv.Running, time.Second, 10*time.Millisecond)
	assert.Equal(t, "hello", get(t, srv.Addr()))

	cancel()
	assert.NoError(t, eg.Wait())
	assert.False(t, srv.Running())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg := server.DefaultConfig()
		srv, err := server.NewFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, ":8080", srv.Addr())
	})

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("invalid tls files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := server.DefaultConfig()
		cfg.TLSCertFile = filepath.Join(dir, "cert.pem")
		cfg.TLSKeyFile = filepath.Join(dir, "key.pem")

		_, err := server.NewFromConfig(cfg)
		assert.ErrorIs(t, err, server.ErrFailedLoadCert)
	})

	t.Run("options from config", func(t *testing.T) {
		t.Parallel()

		opts, err := server.OptionsFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Len(t, opts, 5)

		opts, err = server.OptionsFromConfig(server.Config{})
		require.NoError(t, err)
		assert.Empty(t, opts)
	})
}
