package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"passwordSecurityDemo/internal/config"
	"passwordSecurityDemo/internal/port"
)

const pingTimeout = 2 * time.Second

type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle `optional:"true"`
}

// New builds the configured backend. The "none" backend yields a nil
// storage, which callers treat as persistence being unavailable.
func New(params Params) (port.KeyValueStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger.With(slog.String("backend", cfg.Backend))

	switch cfg.Backend {
	case "none":
		logger.Info("snapshot persistence disabled")
		return nil, nil
	case "memory":
		return NewMemory(), nil
	case "file":
		logger.Info("snapshot persistence on disk", slog.String("dir", cfg.Dir))
		return NewFile(cfg.Dir), nil
	case "redis":
		rdb := redis.NewClient(cfg.RedisOptions())

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			// Storage failures never stop the simulation, so keep going.
			logger.Warn("redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		}

		if params.Lifecycle != nil {
			params.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error { return rdb.Close() },
			})
		}
		return NewRedis(rdb, cfg.Redis.Prefix, cfg.Redis.TTL), nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
