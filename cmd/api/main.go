package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multisig-vault/config"
	custodyAdapter "multisig-vault/internal/adapter/custody"
	httpHandler "multisig-vault/internal/adapter/http/handler"
	pgStorage "multisig-vault/internal/adapter/storage/postgres"
	redisStorage "multisig-vault/internal/adapter/storage/redis"
	"multisig-vault/internal/core/ports"
	"multisig-vault/internal/service"
	"multisig-vault/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Multisig Vault")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	vaultRepo := pgStorage.NewVaultRepo(pool)
	proposalRepo := pgStorage.NewProposalRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Event stream on Redis Streams
	eventStream := redisStorage.NewEventStream(rdb)

	// Custody gateway client
	if cfg.Custody.Endpoint == "" {
		log.Fatal().Msg("custody.endpoint is required (MSV_CUSTODY_ENDPOINT)")
	}
	custodyGw := custodyAdapter.NewHTTPGateway(
		cfg.Custody.Endpoint,
		&http.Client{Timeout: cfg.Custody.Timeout},
		log,
	)

	// Token service
	tokenSvc := service.NewJWTTokenService(cfg.Auth.Secret, cfg.Auth.Expiry, cfg.Auth.Issuer)

	// Initialize business services
	vaultSvc := service.NewVaultService(vaultRepo, custodyGw, log)
	membershipSvc := service.NewMembershipService(vaultRepo, transactor, eventStream, log)
	proposalSvc := service.NewProposalService(vaultRepo, proposalRepo, transactor, eventStream, log)
	executionSvc := service.NewExecutionService(vaultRepo, proposalRepo, transactor, custodyGw, eventStream, log)
	treasurySvc := service.NewTreasuryService(vaultRepo, transactor, custodyGw, eventStream, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VaultSvc:       vaultSvc,
		MembershipSvc:  membershipSvc,
		ProposalSvc:    proposalSvc,
		ExecutionSvc:   executionSvc,
		TreasurySvc:    treasurySvc,
		TokenSvc:       tokenSvc,
		EventSource:    eventStream,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
