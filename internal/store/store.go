// Package store persists small key-value settings: the assistant persona and
// the registered user.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/iiskills/mpa/internal/config"
)

// ErrUnknownDriver is returned by Open for an unsupported store.driver.
var ErrUnknownDriver = errors.New("unknown store driver")

// Settings is a string key-value store.
type Settings interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the store selected by cfg.Driver.
func Open(cfg config.StoreConfig) (Settings, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if err := config.EnsureDir(filepath.Dir(cfg.Path)); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
		return OpenSQLite(cfg.Path)
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(client, cfg.KeyPrefix), nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
