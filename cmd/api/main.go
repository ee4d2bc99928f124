package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
	"github.com/feral-file/ff-sales-engine/internal/api/middleware"
	"github.com/feral-file/ff-sales-engine/internal/api/server"
	"github.com/feral-file/ff-sales-engine/internal/api/shared/executor"
	"github.com/feral-file/ff-sales-engine/internal/config"
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/engine"
	"github.com/feral-file/ff-sales-engine/internal/events"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/messaging"
	"github.com/feral-file/ff-sales-engine/internal/providers/jetstream"
	"github.com/feral-file/ff-sales-engine/internal/registry"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sales-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Sales API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Database schema migrated")
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()

	// Initialize engine and restore persisted state
	commission, err := cfg.Marketplace.Commission()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid commission percent", zap.Error(err))
	}
	eng, err := engine.New(engine.Config{
		Policy: engine.Policy{
			CommissionPercent: commission,
			Platform:          domain.NewParty(cfg.Marketplace.Platform),
			Scale:             cfg.Marketplace.AmountScale,
		},
		StatsCacheSize: cfg.Marketplace.StatsCacheSize,
		AllowReset:     cfg.Marketplace.AllowReset,
	}, dataStore, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create engine", zap.Error(err))
	}
	if err := eng.Load(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to load engine state", zap.Error(err))
	}

	// Load asset registry
	var assetRegistry registry.AssetRegistry
	if cfg.RegistryPath != "" {
		registryLoader := registry.NewAssetRegistryLoader(fs, jsonAdapter)
		assetRegistry, err = registryLoader.Load(cfg.RegistryPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load asset registry",
				zap.Error(err),
				zap.String("path", cfg.RegistryPath))
		}
		logger.InfoCtx(ctx, "Loaded asset registry", zap.String("path", cfg.RegistryPath))
	} else {
		logger.WarnCtx(ctx, "Asset registry path not configured, asset fields are taken from requests")
	}

	// Initialize event publishing
	var publisher messaging.Publisher
	dispatcher := messaging.NewNoopDispatcher()
	if cfg.NATS.URL != "" {
		var signer *events.Signer
		if cfg.Events.SigningSecret != "" {
			signer = events.NewSigner(cfg.Events.SigningSecret, jsonAdapter, adapter.NewJCS())
		} else {
			logger.WarnCtx(ctx, "Event signing secret not configured, events are published unsigned")
		}

		natsJS := adapter.NewNatsJetStream()
		connect := func() error {
			var err error
			publisher, err = jetstream.NewPublisher(jetstream.Config{
				URL:            cfg.NATS.URL,
				StreamName:     cfg.NATS.StreamName,
				SubjectPrefix:  cfg.NATS.SubjectPrefix,
				MaxReconnects:  cfg.NATS.MaxReconnects,
				ReconnectWait:  cfg.NATS.ReconnectWait,
				ConnectionName: cfg.NATS.ConnectionName,
			}, natsJS, jsonAdapter, signer)
			return err
		}
		notify := func(err error, d time.Duration) {
			logger.WarnCtx(ctx, "Failed to connect to NATS, retrying", zap.Error(err), zap.Duration("backoff", d))
		}

		b := backoff.NewExponentialBackOff()
		b.MaxElapsedTime = 30 * time.Second
		if err := backoff.RetryNotify(connect, backoff.WithContext(b, ctx), notify); err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))

		dispatcher = messaging.NewDispatcher(messaging.DispatcherConfig{
			WorkerPoolSize:  cfg.Events.WorkerPoolSize,
			QueueSize:       cfg.Events.QueueSize,
			MaxRetryElapsed: cfg.Events.MaxRetryElapsed,
		}, publisher)
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, contract events are not published")
	}

	exec := executor.NewExecutor(eng, assetRegistry, dispatcher, clockAdapter)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// Drain queued events before closing the connection
	dispatcher.Stop()
	if publisher != nil {
		publisher.Close()
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Sales API server stopped")
}
