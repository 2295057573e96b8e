package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/virtualdesk/internal/cache"
	"github.com/virtualdesk/internal/config"
	"github.com/virtualdesk/internal/db"
	"github.com/virtualdesk/internal/handler"
	"github.com/virtualdesk/internal/logging"
	"github.com/virtualdesk/internal/router"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine; the environment may be set by the host.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		logger.Fatal("failed to ensure admin user", zap.Error(err))
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		store = redisStore
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	} else {
		store = cache.NewMemory()
		logger.Info("using in-process cache")
	}

	api := handler.NewAPI(db.DB, store, logger, handler.Options{
		SiteBaseURL: cfg.SiteBaseURL,
		AIAPIKey:    cfg.AIAPIKey,
		AIBaseURL:   cfg.AIBaseURL,
		AIModel:     cfg.AIModel,
	})

	r := router.Setup(api, logger, router.Options{
		GinMode:       cfg.GinMode,
		SessionSecret: cfg.SessionSecret,
		TemplateGlob:  cfg.TemplateGlob,
		StaticDir:     cfg.StaticDir,
	})

	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
