package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/blogsite/blog-platform/internal/api"
	"github.com/blogsite/blog-platform/internal/api/handler"
	"github.com/blogsite/blog-platform/internal/gateway"
	"github.com/blogsite/blog-platform/internal/infrastructure/config"
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
		Service: "gateway",
		Pretty:  cfg.Env == "development",
	})

	key, err := token.ResolveSigningKey(cfg.JWTSecretFile, cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("signing key resolution failed")
	}

	authURL, err := url.Parse(cfg.Gateway.AuthServiceURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth service URL")
	}
	blogURL, err := url.Parse(cfg.Gateway.BlogServiceURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid blog service URL")
	}

	gw := gateway.New(gateway.DefaultRouteTable(), token.NewCodec(key), authURL, blogURL, log)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(api.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("gateway"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.Any("/*", gw.Proxy, gw.Filter)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("auth_backend", cfg.Gateway.AuthServiceURL).
			Str("blog_backend", cfg.Gateway.BlogServiceURL).
			Msg("gateway listening")
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
