package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogsite/blog-platform/internal/api"
	"github.com/blogsite/blog-platform/internal/api/handler"
	"github.com/blogsite/blog-platform/internal/core/service"
	"github.com/blogsite/blog-platform/internal/infrastructure/config"
	mongodb "github.com/blogsite/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/blogsite/blog-platform/internal/infrastructure/db/redis"
	"github.com/blogsite/blog-platform/internal/token"
	"github.com/blogsite/blog-platform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "auth-service",
		Pretty:  cfg.Env == "development",
	})

	key, err := token.ResolveSigningKey(cfg.JWTSecretFile, cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("signing key resolution failed")
	}

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	users, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("user repository init failed")
	}

	authService := service.NewAuthService(users, redisdb.NewRevocationList(rdb), token.NewCodec(key), cfg.BcryptCost)

	seeds := []service.SeedUser{
		{Username: cfg.Seed.AdminUsername, Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword, Admin: true},
		{Username: cfg.Seed.UserUsername, Email: cfg.Seed.UserEmail, Password: cfg.Seed.UserPassword},
	}
	if err := service.SeedUsers(ctx, authService, users, seeds, log); err != nil {
		log.Fatal().Err(err).Msg("user seeding failed")
	}

	e := api.NewAuthRouter(handler.NewAuthHandler(authService), db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("auth service listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
