package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeco/marketplace-api/internal/api"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
	"github.com/tradeco/marketplace-api/internal/core/service"
	"github.com/tradeco/marketplace-api/internal/infrastructure/config"
	"github.com/tradeco/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/tradeco/marketplace-api/internal/infrastructure/db/redis"
	"github.com/tradeco/marketplace-api/internal/infrastructure/storage"
	"github.com/tradeco/marketplace-api/pkg/logger"

	_ "github.com/tradeco/marketplace-api/docs" // swagger docs
)

const shutdownTimeout = 15 * time.Second

// @title Marketplace API
// @version 1.0
// @description Second-hand clothing marketplace backend.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: os.Getenv("ENV") == "development"})
	cfg := config.Load(log)

	ctx := context.Background()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	dashboardRepo := mongo.NewDashboardRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product index creation failed")
	}

	seedAdmin(ctx, cfg, userRepo, log)

	fileStore, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	throttle := redis.NewLoginThrottle(redisClient)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, userRepo, fileStore, log)
	dashboardService := service.NewDashboardService(dashboardRepo, log)

	e := api.NewRouter(api.Deps{
		DB:             db,
		Redis:          redisClient,
		Tokens:         tokens,
		Auth:           authService,
		Users:          userService,
		Products:       productService,
		Dashboard:      dashboardService,
		UploadDir:      fileStore.Dir(),
		MaxUploadBytes: cfg.Upload.MaxFileBytes,
		Log:            log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server stopped")
}

// seedAdmin creates the administrator account named by ADMIN_EMAIL and
// ADMIN_PASSWORD when neither variable is empty. An already existing
// account is left untouched.
func seedAdmin(ctx context.Context, cfg *config.Config, users ports.UserRepository, log zerolog.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	if _, err := users.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Error().Err(err).Msg("admin seed lookup failed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("admin seed hash failed")
		return
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     "admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return
		}
		log.Error().Err(err).Msg("admin seed failed")
		return
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("admin account created")
}
