package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"peopledir/internal/audit"
	httpapi "peopledir/internal/http"
	personhandler "peopledir/internal/person/handler"
	personmetrics "peopledir/internal/person/metrics"
	"peopledir/internal/person/service"
	personstore "peopledir/internal/person/store/person"
	"peopledir/internal/platform/config"
	"peopledir/internal/platform/httpserver"
	"peopledir/internal/platform/kafka"
	"peopledir/internal/platform/logger"
	platformmetrics "peopledir/internal/platform/metrics"
	"peopledir/internal/platform/postgres"
	platformredis "peopledir/internal/platform/redis"
)

const auditInboxSize = 256

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "peopledir: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newPersonStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("person store: %w", err)
	}
	defer cleanup()

	auditTrail := audit.NewInMemoryStore()
	auditOpts := []audit.Option{audit.WithLogger(log)}

	// Kafka delivery is optional: without brokers the audit trail stays
	// in-process and no worker runs.
	var worker *audit.Worker
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := kafka.NewClient(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka client: %w", err)
		}
		defer kafkaClient.Close()

		inbox := make(chan audit.Event, auditInboxSize)
		auditOpts = append(auditOpts, audit.WithInbox(inbox))
		worker = audit.NewWorker(audit.NewKafkaSink(kafkaClient, cfg.Kafka.AuditTopic), inbox, log)
	}
	publisher := audit.NewPublisher(auditTrail, auditOpts...)

	svc := service.New(store,
		service.WithLogger(log),
		service.WithMetrics(personmetrics.New()),
		service.WithAuditPublisher(publisher),
	)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Persons:        personhandler.New(svc, log),
		Logger:         log,
		Metrics:        platformmetrics.New(),
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting peopledir", "addr", cfg.Server.Addr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if worker != nil {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("peopledir stopped")
	return nil
}

// newPersonStore builds the store adapter selected by configuration and
// returns a cleanup for whatever connection it opened.
func newPersonStore(ctx context.Context, cfg config.Config) (service.PersonStore, func(), error) {
	switch cfg.StoreBackend {
	case "memory":
		return personstore.NewInMemory(), func() {}, nil
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		if _, err := db.ExecContext(ctx, personstore.Schema); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("apply schema: %w", err)
		}
		return personstore.NewPostgres(db), func() { _ = db.Close() }, nil
	case "redis":
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return personstore.NewRedis(client.Client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
