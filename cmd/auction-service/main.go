package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openmazad/auction-service/internal/app/background"
	"github.com/openmazad/auction-service/internal/config"
	"github.com/openmazad/auction-service/internal/delivery/httpapi"
	"github.com/openmazad/auction-service/internal/infrastructure/kafka"
	"github.com/openmazad/auction-service/internal/infrastructure/metrics"
	"github.com/openmazad/auction-service/internal/infrastructure/migrate"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres"
	"github.com/openmazad/auction-service/internal/infrastructure/postgres/repository"
	"github.com/openmazad/auction-service/internal/usecase/approval"
	"github.com/openmazad/auction-service/internal/usecase/bidding"
	"github.com/openmazad/auction-service/internal/usecase/lifecycle"
	"github.com/openmazad/auction-service/internal/usecase/settlement"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.AuctionDB.MigrationPath != "" {
		if err := migrate.RunMigrations(db, cfg.AuctionDB.MigrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	publisherConfig := kafka.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	eventPublisher, err := kafka.NewKafkaPublisher(publisherConfig)
	if err != nil {
		log.Fatalf("failed to init kafka publisher: %v", err)
	}
	defer eventPublisher.Close()

	// Init repositories
	auctionRepo := repository.NewDefaultAuctionRepository(db)
	requestRepo := repository.NewDefaultAuctionRequestRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	winnerRepo := repository.NewDefaultWinnerRepository(db)
	bidLedgerRepo := repository.NewDefaultBidLedgerRepository(db)
	userDirectory := repository.NewDefaultUserDirectory(db)

	// Init metrics
	auctionMetrics := metrics.NewAuctionMetrics()

	// Init usecases
	biddingUC := bidding.NewDefaultBiddingUsecase(
		auctionRepo,
		paymentRepo,
		bidLedgerRepo,
		userDirectory,
		eventPublisher,
		auctionMetrics,
	)

	lifecycleUC := lifecycle.NewDefaultLifecycleUsecase(
		auctionRepo,
		winnerRepo,
		userDirectory,
		eventPublisher,
		auctionMetrics,
	)

	approvalUC := approval.NewDefaultApprovalUsecase(
		requestRepo,
		auctionRepo,
		userDirectory,
		auctionMetrics,
	)

	settlementUC := settlement.NewDefaultSettlementUsecase(
		auctionRepo,
		paymentRepo,
		winnerRepo,
		userDirectory,
		eventPublisher,
		auctionMetrics,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Lifecycle sweep: one immediate pass, then every interval
	tasks := background.NewBackgroundTasks(lifecycleUC, cfg.Scheduler.SweepInterval)
	tasks.StartAll(ctx)

	apiServer := httpapi.NewServer(
		fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		auctionRepo,
		biddingUC,
		lifecycleUC,
		settlementUC,
		approvalUC,
	)
	apiServer.RunInBackground()

	// Metrics endpoint
	metricsAddr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	metricsServer := &http.Server{Addr: metricsAddr, Handler: promhttp.Handler()}
	go func() {
		slog.Info("metrics server started", "addr", metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("metrics server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down, draining sweep")
	tasks.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", "error", err.Error())
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics server shutdown failed", "error", err.Error())
	}
}
