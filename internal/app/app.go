package app

import (
	"context"
	"fmt"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores, registers every module on router and returns a
// cleanup func that closes the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	files := storage.Disabled()
	if cfg.Minio.Enabled() {
		client, err := connection.ConnectMinio(ctx, cfg.Minio, logger)
		if err != nil {
			cleanup()
			return nil, err
		}
		files = storage.NewMinioStorage(client, cfg.Minio.Bucket, cfg.Minio.PublicBaseURL, logger)
		logger.Info("attachment storage enabled", zap.String("bucket", cfg.Minio.Bucket))
	} else {
		logger.Warn("attachment storage disabled, uploads will be rejected")
	}

	if err := registerModules(router, cfg, modules{
		db:     sqlDB,
		gormDB: gormDB,
		rdb:    redisClient,
		files:  files,
		logger: logger,
	}); err != nil {
		cleanup()
		return nil, fmt.Errorf("register modules: %w", err)
	}

	return cleanup, nil
}
