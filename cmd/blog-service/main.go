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

	_ "github.com/blogsite/blog-platform/docs"
	"github.com/blogsite/blog-platform/internal/api"
	"github.com/blogsite/blog-platform/internal/api/handler"
	"github.com/blogsite/blog-platform/internal/core/service"
	"github.com/blogsite/blog-platform/internal/infrastructure/config"
	mongodb "github.com/blogsite/blog-platform/internal/infrastructure/db/mongo"
	"github.com/blogsite/blog-platform/pkg/logger"
)

var defaultCategories = []string{
	"Technology and Programming",
	"Health and Lifestyle Guides",
	"Travel and Adventure Stories",
}

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
		Service: "blog-service",
		Pretty:  cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	blogs, err := mongodb.NewBlogRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("blog repository init failed")
	}
	categories, err := mongodb.NewCategoryRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("category repository init failed")
	}

	if err := service.SeedCategories(ctx, categories, defaultCategories, log); err != nil {
		log.Fatal().Err(err).Msg("category seeding failed")
	}

	blogService := service.NewBlogService(blogs, categories)
	e := api.NewBlogRouter(handler.NewBlogHandler(blogService), db, nil, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("blog service listening")
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
