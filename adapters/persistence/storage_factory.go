package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// NewStorage builds the slot storage selected by storage.driver, optionally
// fronted by a Redis cache. The returned close func releases every
// connection it opened.
func NewStorage(ctx context.Context, cfg config.Config, log logger.Logger) (portfolio.Storage, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var store portfolio.Storage
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		store = NewMemoryStorage()
	case config.StoragePostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		store = NewPostgresStorage(pool, log)
	case config.StorageSQLite:
		s, err := OpenSQLiteStorage(ctx, cfg.SQLite.Path, log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { s.Close() })
		store = s
	case config.StorageRedis:
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { rdb.Close() })
		store = NewRedisStorage(rdb, 0)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Storage.Cache && cfg.Storage.Driver != config.StorageRedis && cfg.Storage.Driver != config.StorageMemory {
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { rdb.Close() })
		store = NewCachedStorage(NewRedisStorage(rdb, cfg.Redis.CacheTTL), store, log)
	}

	log.Info("Slot storage ready", zap.String("storage", store.Name()))
	return store, closeAll, nil
}
