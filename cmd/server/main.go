// @title        Fotabong Royal Enterprise Portal API
// @version      1.0
// @description  Client/admin portal and marketing API for the construction company website.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fotabongroyal/portal-api/internal/api"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
	"github.com/fotabongroyal/portal-api/internal/core/service"
	"github.com/fotabongroyal/portal-api/internal/infrastructure/config"
	mongodb "github.com/fotabongroyal/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fotabongroyal/portal-api/internal/infrastructure/db/redis"
	"github.com/fotabongroyal/portal-api/internal/infrastructure/queue"
	"github.com/fotabongroyal/portal-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	profileRepo := mongodb.NewProfileRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	stageRepo := mongodb.NewStageRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	inboxRepo := mongodb.NewInboxRepository(db)

	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("profile index creation failed")
	}
	if err := projectRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("project index creation failed")
	}

	// --- Core services ---
	// The auth provider publishes into the dispatcher; the dispatcher feeds
	// the session resolver. The resolver also needs the provider for
	// sign-out, so wiring happens in two steps through the sink handle.
	identityCache := redisdb.NewIdentityCache(rdb)

	var resolver *service.SessionResolver
	dispatcher := queue.NewDispatcher(cfg.AuthWorkers, queue.HandlerFunc(func(ctx context.Context, ev ports.AuthEvent) {
		resolver.HandleAuthEvent(ctx, ev)
	}), log)

	authService := service.NewAuthService(profileRepo, dispatcher, cfg.JWTSecret, 24*time.Hour)
	resolver = service.NewSessionResolver(profileRepo, identityCache, authService, log)
	dispatcher.Start(ctx)

	dashboardService := service.NewDashboardService(projectRepo, stageRepo, paymentRepo, profileRepo, log)
	inboxService := service.NewInboxService(inboxRepo, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Auth:      authService,
		Sessions:  resolver,
		Dashboard: dashboardService,
		Inbox:     inboxService,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portal api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("portal api stopped")
}
