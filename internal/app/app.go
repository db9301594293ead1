// Package app wires configuration, storage, external clients and the
// HTTP server into a running gateway.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ecomm-gateway/config"
	router "ecomm-gateway/internal/controller/http"
	"ecomm-gateway/internal/controller/http/handlers"
	"ecomm-gateway/internal/domain/currency"
	"ecomm-gateway/internal/domain/payment"
	"ecomm-gateway/internal/external/ecomm"
	"ecomm-gateway/internal/external/kafka"
	"ecomm-gateway/internal/external/opensearch"
	order_repo "ecomm-gateway/internal/repo/order"
	"ecomm-gateway/pkg/health"
	"ecomm-gateway/pkg/logger"
	"ecomm-gateway/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

// Version is reported by the liveness endpoint.
const Version = "1.0.0"

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	certConfigured := cfg.CertPath != "" && cfg.CertPassphrase != ""
	if !certConfigured {
		// The service still boots so health and operator endpoints work,
		// but Initiate refuses until the certificate is configured.
		l.Warn("processor certificate path or passphrase not configured; payments are disabled")
	}

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	processor, err := newProcessorClient(cfg, certConfigured)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - newProcessorClient: %w", err))
	}

	var publisher payment.SettlementPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaSettlementsTopic)
		defer kafkaPublisher.Close()
		publisher = kafka.NewSettlementPublisher(kafkaPublisher)
	}

	var audit payment.AuditSink
	if len(cfg.OpensearchURLs) > 0 {
		audit, err = opensearch.NewAuditSink(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexAudit)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewAuditSink: %w", err))
		}
	}

	opts := payment.Options{
		ShopName:       cfg.ShopName,
		Language:       cfg.Language,
		ThankYouURL:    cfg.ThankYouURL,
		CheckoutURL:    cfg.CheckoutURL,
		CertConfigured: certConfigured,
	}
	if cfg.VerifyRetryEnabled {
		opts.VerifyRetry = &payment.RetryConfig{
			MaxAttempts: cfg.VerifyRetryAttempts,
			BaseDelay:   cfg.VerifyRetryBase,
			MaxDelay:    cfg.VerifyRetryMax,
		}
	}

	store := order_repo.NewPgOrderStore(pg)
	service := payment.NewService(l, store, processor, currency.NewLookup(), publisher, audit, opts)

	checkers := []health.Checker{health.NewPostgresChecker(pg.Pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	registry := health.NewRegistry(checkers...)

	paymentHandler := handlers.NewPaymentHandler(service, cfg.ClientHandlerURL, cfg.DisplayTitle)
	opsHandler := handlers.NewOpsHandler(service, cfg.CloseDayToken)

	engine := NewGinEngine(l, cfg.Debug)
	router.NewRouter(
		paymentHandler,
		opsHandler,
		cfg.SuccessCallbackPath,
		cfg.FailureCallbackPath,
		registry,
		Version,
	).SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.CloseDayAuto {
		g.Go(func() error {
			return closeDayScheduler(gCtx, l, service, cfg.CloseDayInterval)
		})
	}

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
}

func newProcessorClient(cfg config.Config, certConfigured bool) (*ecomm.Client, error) {
	if !certConfigured {
		return ecomm.New(cfg.MerchantHandlerURL, &http.Client{Timeout: cfg.ProcessorTimeout}), nil
	}
	return ecomm.NewWithCertificate(cfg.MerchantHandlerURL, cfg.CertPath, cfg.CertPassphrase, cfg.ProcessorTimeout)
}
