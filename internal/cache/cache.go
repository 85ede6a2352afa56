package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
	NoopBackend   = "none"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a typed key/value cache with per-entry TTL.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes every given key; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// Config selects and tunes a backend.
type Config struct {
	Backend    string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis none"`
	TTL        time.Duration `env:"CACHE_TTL" env-default:"5m"`
	RedisAddr  string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPass  string        `env:"REDIS_PASSWORD"`
	RedisDB    int           `env:"REDIS_DB" env-default:"0"`
	OpTimeout  time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"50ms"`
	PoolSize   int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	MaxRetries int           `env:"REDIS_MAX_RETRIES" env-default:"2"`
}

// New builds the backend named in cfg.
func New[V any](cfg Config) (Cache[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		return NewRedisCache[V](&RedisOptions{
			Addr:            cfg.RedisAddr,
			Password:        cfg.RedisPass,
			DB:              cfg.RedisDB,
			PoolSize:        cfg.PoolSize,
			MaxRetries:      cfg.MaxRetries,
			MinRetryBackoff: 8 * time.Millisecond,
			MaxRetryBackoff: 512 * time.Millisecond,
			OpTimeout:       cfg.OpTimeout,
		}), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	case NoopBackend:
		return Noop[V]{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Noop never stores anything; every Get is a miss.
type Noop[V any] struct{}

func (Noop[V]) Get(context.Context, string) (V, error) {
	var zero V
	return zero, ErrCacheMiss
}

func (Noop[V]) Set(context.Context, string, V, time.Duration) error { return nil }

func (Noop[V]) Delete(context.Context, ...string) error { return nil }
