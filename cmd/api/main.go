package main

import (
	"context"
	"log"
	"time"

	"moments-offers/internal/core/cache"
	"moments-offers/internal/core/config"
	"moments-offers/internal/core/logger"
	"moments-offers/internal/core/server"
	"moments-offers/internal/features/offers/adapters"
	"moments-offers/internal/features/offers/handler"
	"moments-offers/internal/features/offers/ports"
	"moments-offers/internal/features/offers/service"

	"go.uber.org/zap"
)

// @title Moments Offers API
// @version 1.0
// @description This API hosts offer-carousel sessions backed by the Moments/AdsPostX offers service, driving offer navigation and tracking-beacon dispatch.
// @contact.name API Support
// @contact.email support@momentsoffers.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Offers gateway, optionally wrapped with the Redis response cache
	var gateway ports.OffersGateway = adapters.NewMomentsAdapter(cfg.Moments)

	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis adapter", zap.Error(err))
		}
		if err := redisCache.Ping(context.Background()); err != nil {
			l.Fatal("Redis health check failed", zap.Error(err))
		}
		defer redisCache.Close()

		ttl := time.Duration(cfg.Cache.OfferTTLSeconds) * time.Second
		gateway = adapters.NewCachedGateway(gateway, redisCache, ttl)
		l.Info("Offer response cache enabled", zap.Duration("ttl", ttl))
	}

	sink := adapters.NewHTTPBeaconSink(time.Duration(cfg.Moments.BeaconTimeoutSeconds) * time.Second)
	defer sink.Wait()

	sessions := service.NewSessionService(gateway, sink)
	sessionHandler := handler.NewSessionHandler(sessions)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/sessions", sessionHandler.CreateSession)
	srv.App.Get("/sessions/:id", sessionHandler.GetSession)
	srv.App.Delete("/sessions/:id", sessionHandler.RemoveSession)
	srv.App.Post("/sessions/:id/reload", sessionHandler.Reload)
	srv.App.Post("/sessions/:id/next", sessionHandler.Next)
	srv.App.Post("/sessions/:id/previous", sessionHandler.Previous)
	srv.App.Post("/sessions/:id/accept", sessionHandler.Accept)
	srv.App.Post("/sessions/:id/decline", sessionHandler.Decline)
	srv.App.Post("/sessions/:id/close", sessionHandler.CloseSession)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
