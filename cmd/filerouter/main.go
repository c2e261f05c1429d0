// Command filerouter serves the example routes in ./routes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/filerouter"
	"github.com/dmitrymomot/filerouter/cmd/filerouter/routes"
	"github.com/dmitrymomot/filerouter/cmd/filerouter/routes/docs"
	"github.com/dmitrymomot/filerouter/cmd/filerouter/routes/users"
	"github.com/dmitrymomot/filerouter/core/config"
	"github.com/dmitrymomot/filerouter/core/health"
	"github.com/dmitrymomot/filerouter/core/loader"
	"github.com/dmitrymomot/filerouter/core/logger"
	"github.com/dmitrymomot/filerouter/core/server"
	"github.com/dmitrymomot/filerouter/middleware"
)

// Config is the command configuration. Values come from the environment
// (and .env), optionally overlaid by the YAML file named in CONFIG_FILE.
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"filerouter" yaml:"app_name"`
	Env        string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	Port       int    `env:"PORT" envDefault:"8080" yaml:"port"`
	ConfigFile string `env:"CONFIG_FILE"`

	App    filerouter.Config `yaml:"app"`
	Server server.Config     `yaml:"server"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	if cfg.ConfigFile != "" {
		if err := config.LoadFile(cfg.ConfigFile, &cfg); err != nil {
			slog.Error("failed to load config file", logger.Error(err))
			os.Exit(1)
		}
	}

	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithContextValue("request_id", middleware.RequestIDKey())}
	switch cfg.Env {
	case "production":
		opts = append(opts, logger.WithProduction(cfg.AppName))
	case "staging":
		opts = append(opts, logger.WithStaging(cfg.AppName))
	default:
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	return logger.New(append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))...)
}

// newRegistry maps the route marker files in dir to their handlers.
func newRegistry(dir string, log *slog.Logger) *loader.Registry {
	reg := loader.NewRegistry(dir)
	reg.MustRegister("index.route", routes.Handler)
	reg.MustRegister("users/[id].route", users.Handler)
	reg.MustRegister("docs/[...slug].route", docs.Handler)
	reg.MustRegister("health/live.route", health.Liveness)
	reg.MustRegister("health/ready.route", health.Readiness(log))
	return reg
}

func run(cfg Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := newRegistry(cfg.App.RoutesDir, log)

	serverOpts, err := server.OptionsFromConfig(cfg.Server)
	if err != nil {
		return err
	}

	app, err := filerouter.NewFromConfig(cfg.App,
		filerouter.WithLoader(reg),
		filerouter.WithLogger(log),
		filerouter.WithServerOptions(serverOpts...),
	)
	if err != nil {
		return err
	}

	app.Use(
		middleware.RequestID(),
		middleware.SecurityHeaders(),
		middleware.CORS(),
		middleware.LoggingWithLogger(log),
		middleware.BodyLimitWithSize(middleware.MB),
	)

	for _, rt := range app.Routes() {
		log.Info("route registered", logger.Route(rt.Pattern), logger.File(rt.FilePath))
	}

	srv, err := app.Listen(cfg.Port)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Wait)
	g.Go(func() error {
		<-ctx.Done()
		return srv.Stop()
	})

	return g.Wait()
}
