package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrParsingConfig = errors.New("failed to parse config from environment")
	ErrReadingFile   = errors.New("failed to read config file")
	ErrDecodingFile  = errors.New("failed to decode config file")
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> T
)

// Load parses environment variables into cfg. The first call for a type
// parses the environment; later calls for the same type return the cached value.
// A .env file in the working directory is loaded once, without overriding
// variables that are already set.
func Load[T any](cfg *T) error {
	loadDotenv()

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadFile fills cfg from the environment (envDefault tags included) and then
// overlays the values of a YAML file, so keys present in the file win.
// Results are not cached.
func LoadFile[T any](path string, cfg *T) error {
	loadDotenv()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadingFile, path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingFile, path, err)
	}

	return nil
}

func loadDotenv() {
	dotenvOnce.Do(func() {
		// Missing .env is fine; the environment is the primary source.
		_ = godotenv.Load()
	})
}
