// Package config loads typed configuration from the environment, with
// per-type caching and optional YAML files.
//
// A .env file in the working directory is loaded once on first use; variables
// already set in the environment win. Parsing uses caarlos0/env struct tags:
//
//	import "github.com/dmitrymomot/filerouter/core/config"
//
//	type Config struct {
//		Port int               `env:"PORT" envDefault:"8080" yaml:"port"`
//		App  filerouter.Config `yaml:"app"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var a, b Config
//	config.Load(&a) // parses the environment
//	config.Load(&b) // returns the cached value, a == b
//
// # Files
//
// LoadFile applies environment defaults first and then overlays the YAML
// file, so values present in the file win. LoadFile is not cached:
//
//	if err := config.LoadFile("filerouter.yaml", &cfg); err != nil {
//		return err
//	}
package config
