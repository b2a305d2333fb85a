package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"filmhub/database"
	"filmhub/internal/config"
	"filmhub/internal/http-api/handler"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/repository"
	"filmhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	logger.Info("Connected to redis", "addr", cfg.RedisAddr)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(rdb)
	categoryRepo := repository.NewCategoryRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	categoryService := service.NewCategoryService(categoryRepo)
	filmService := service.NewFilmService(filmRepo, categoryRepo, ratingRepo, engagementRepo)
	commentService := service.NewCommentService(commentRepo, filmRepo)
	ratingService := service.NewRatingService(ratingRepo, filmRepo)
	engagementService := service.NewEngagementService(engagementRepo, filmRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	filmHandler := handler.NewFilmHandler(filmService, engagementService)
	commentHandler := handler.NewCommentHandler(commentService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	favoriteHandler := handler.NewFavoriteHandler(engagementService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	authHandler.RegisterRoutes(api)

	// Public reads with an optional identity; authorization still sees the
	// caller when a token is supplied.
	public := api.Group("", middleware.OptionalAuth(authService))
	categoryHandler.RegisterRoutes(public)
	filmHandler.RegisterRoutes(public)

	// Everything below requires a valid token.
	protected := api.Group("", middleware.RequireAuth(authService))
	commentHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)
	favoriteHandler.RegisterRoutes(protected)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
