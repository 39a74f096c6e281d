package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Backends lists every backend name.
var Backends = []string{BackendFile, BackendRedis, BackendMongo, BackendNone}

// Options select and configure a backend.
type Options struct {
	Backend       string // one of Backends; empty means file
	Dir           string // file backend directory; empty means DefaultDir
	RedisURL      string
	MongoURI      string
	MongoDatabase string
}

// Open creates the cache described by opts. Network backends get ten seconds
// to connect.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileCache(opts.Dir)
	case BackendNone:
		return NewNullCache(), nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: no URL configured")
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		c, err := NewRedisCache(ctx, opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return c, nil
	case BackendMongo:
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("mongo cache: no URI configured")
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		c, err := NewMongoCache(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("mongo cache: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (valid: file, redis, mongo, none)", opts.Backend)
	}
}

// KeyerFor returns the keyer to use with backend. Shared backends get a
// "scholarnet:" prefix.
func KeyerFor(backend string) Keyer {
	switch backend {
	case BackendRedis, BackendMongo:
		return NewScopedKeyer(NewDefaultKeyer(), AppName+":")
	default:
		return NewDefaultKeyer()
	}
}
