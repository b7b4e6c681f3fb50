package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates the config struct from environment variables based on
// its `env` field tags. A .env file in the working directory is loaded
// once per process before the first parse; its absence is not an error.
// Each config type is parsed only once — later calls for the same type
// return the cached copy, so every package sees identical settings.
//
// Example:
//
//	type CookieConfig struct {
//		Path   string `env:"COOKIE_PATH" envDefault:"/"`
//		Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
//	}
//
//	var cfg CookieConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure, for configuration the
// process cannot start without
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeName[T](), err))
	}
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
