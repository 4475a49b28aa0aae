package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/finwallet/installment-service/internal/application/usecase"
	"github.com/finwallet/installment-service/internal/domain/service"
	"github.com/finwallet/installment-service/internal/infrastructure/config"
	"github.com/finwallet/installment-service/internal/infrastructure/messaging"
	pgRepo "github.com/finwallet/installment-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/finwallet/installment-service/internal/presentation/grpc"
	"github.com/finwallet/installment-service/internal/presentation/rest"
	"github.com/finwallet/installment-service/pkg/auth"
	"github.com/finwallet/installment-service/pkg/kafka"
	"github.com/finwallet/installment-service/pkg/observability"
	"github.com/finwallet/installment-service/pkg/postgres"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting installment service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	migrationsDir := getEnv("MIGRATIONS_DIR", "file://internal/infrastructure/persistence/postgres/migrations")
	if err := postgres.RunMigrations(dbCfg.DSN(), migrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// --- Messaging ----------------------------------------------------------
	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error("failed to close kafka producer", "error", err)
		}
	}()
	publisher := messaging.NewKafkaPublisher(producer)

	// --- Infrastructure adapters -------------------------------------------
	planRepo := pgRepo.NewPlanRepo(pool)
	categoryRepo := pgRepo.NewCategoryRepo(pool)
	uow := pgRepo.NewUnitOfWork(pool)
	advisor := service.NewRateAdvisor()

	// --- Use cases ----------------------------------------------------------
	createPlanUC := usecase.NewCreatePlanUseCase(planRepo, categoryRepo, publisher, logger)
	getPlanUC := usecase.NewGetPlanUseCase(planRepo)
	listPlansUC := usecase.NewListPlansUseCase(planRepo)
	listPlansDueUC := usecase.NewListPlansDueUseCase(planRepo)
	updatePlanUC := usecase.NewUpdatePlanUseCase(planRepo, categoryRepo)
	deletePlanUC := usecase.NewDeletePlanUseCase(planRepo, pgRepo.NewTransactionRepo(pool))
	processPaymentUC := usecase.NewProcessPaymentUseCase(uow, publisher, logger)
	suggestRateUC := usecase.NewSuggestRateUseCase(advisor)
	listRatesUC := usecase.NewListRatesUseCase(advisor)
	compareRateUC := usecase.NewCompareRateUseCase(advisor)

	// --- Auth ---------------------------------------------------------------
	jwtCfg := auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
	}
	if cfg.Auth.JWTPublicKeyFile != "" {
		keyPEM, err := auth.LoadKeyFromFile(cfg.Auth.JWTPublicKeyFile)
		if err != nil {
			logger.Error("failed to load JWT public key", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyPEM)
	}
	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialise JWT service", "error", err)
		os.Exit(1)
	}

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewHandler(
		createPlanUC, getPlanUC, listPlansUC, listPlansDueUC,
		updatePlanUC, deletePlanUC, processPaymentUC,
		suggestRateUC, listRatesUC, compareRateUC,
	)

	grpcServer, err := grpcPresentation.NewServer(handler, jwtService, cfg.TLS, logger)
	if err != nil {
		logger.Error("failed to build gRPC server", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.HTTPPort,
	})
	if err != nil {
		logger.Error("failed to initialise metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down meter provider", "error", err)
		}
	}()

	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("installment service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
