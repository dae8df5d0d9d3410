package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Options struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MongoURI      string
	MongoDatabase string
}

// Open connects the configured backend. The returned close func releases it.
func Open(ctx context.Context, opts Options) (Storage, func() error, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), func() error { return nil }, nil

	case BackendSQLite, "":
		s, err := NewSQLite(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		return NewRedis(client), client.Close, nil

	case BackendMongo:
		db, err := ConnectMongoDB(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error { return db.Client().Disconnect(context.Background()) }
		return NewMongo(db), closeFn, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}
