package app

import (
	"context"
	"net/http"

	"pengelola-cuti/internal/config"
	"pengelola-cuti/internal/middleware"
	"pengelola-cuti/internal/notification"
	"pengelola-cuti/internal/shared/connection"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, migrates the schema and mounts every
// module on router. The returned cleanup closes what was opened.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app.api")
	ctx := context.Background()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	// Notifikasi: kafka bila broker tersedia, selain itu hanya di-log.
	var (
		sender      notification.Sender
		kafkaWriter *kafkago.Writer
	)
	if cfg.Kafka != "" {
		kafkaWriter = connection.NewKafkaWriter(cfg.Kafka, true)
		sender = notification.NewKafkaSender(kafkaWriter)
	} else {
		logger.Warn("KAFKA_BROKER not set, notifications are logged only")
		sender = notification.NewLogSender(logger)
	}

	cleanup := func() {
		if kafkaWriter != nil {
			_ = kafkaWriter.Close()
		}
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins), middleware.RequestID(), middleware.ContextLogger(logger))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Register Modules & Routes
	modules, err := registerModules(ctx, router, cfg, gormDB, redisClient, sender, logger)
	if err != nil {
		cleanup()
		return nil, err
	}

	if cfg.BootstrapAdminEmail != "" {
		created, err := modules.Auth.EnsureSuperAdmin(ctx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword)
		if err != nil {
			cleanup()
			return nil, err
		}
		if created {
			logger.Info("bootstrap super admin created", zap.String("email", cfg.BootstrapAdminEmail))
		}
	}

	return cleanup, nil
}
