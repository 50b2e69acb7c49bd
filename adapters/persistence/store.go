package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/internal/domain/kv"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

// NewKVStore opens the backend named by storage.driver.
func NewKVStore(cfg config.Config, log logger.Logger) (kv.Store, error) {
	log.Info("Opening key-value store", zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverSQLite, "":
		db, err := OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewGormKVStore(db)
	case config.DriverPostgres:
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, err
		}
		return NewPostgresKVStore(pool), nil
	case config.DriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, err
		}
		return NewRedisKVStore(rdb), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
