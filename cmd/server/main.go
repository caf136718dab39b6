package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lstasi/rummikub-backend/configs"
	"github.com/lstasi/rummikub-backend/crypto"
	"github.com/lstasi/rummikub-backend/game"
	"github.com/lstasi/rummikub-backend/logger"
	"github.com/lstasi/rummikub-backend/ratelimit"
	"github.com/lstasi/rummikub-backend/storage"
)

func main() {
	configPath := "configs/config.yaml"
	if fromEnv := os.Getenv("RUMMIKUB_CONFIG"); fromEnv != "" {
		configPath = fromEnv
	}

	cfg, err := configs.Load(configPath)
	if err != nil {
		panic(err)
	}

	log := logger.Setup(cfg.LogLevel)

	if cfg.JWTKey == "" {
		log.Fatal().Msg("jwt_key is required (RUMMIKUB_JWT_KEY)")
	}

	gin.SetMode(cfg.GinMode)

	repo := newRepository(cfg, log)
	service := game.NewService(repo, log)
	tokens := crypto.NewJWTManager(cfg.JWTKey, cfg.SessionMaxAge)
	handler := game.NewGameHandler(service, tokens, cfg.SessionMaxAge)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ratelimit.Middleware(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst))

	var allowedOrigins []string
	if cfg.GinMode == "release" {
		allowedOrigins = append(allowedOrigins,
			"https://"+cfg.FrontendOrigin,
			"https://www."+cfg.FrontendOrigin,
		)
	} else {
		allowedOrigins = append(allowedOrigins, "http://"+cfg.FrontendOrigin)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Origin"},
	}))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(r)

	server := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("couldn't start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// newRepository connects to Redis, falling back to process memory when it is
// unreachable so the server still works in development. Memory-held games do
// not survive a restart.
func newRepository(cfg *configs.Config, log zerolog.Logger) game.Repository {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	repo := storage.NewRedisRepo(client, cfg.Redis.GameTTL)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("redis unreachable, using in-memory storage")
		return storage.NewMemoryRepo()
	}
	return repo
}
