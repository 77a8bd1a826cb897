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

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/chain"
	"github.com/evtlabs/ledgersight-backend/internal/ledger/repository/postgres"
	"github.com/evtlabs/ledgersight-backend/internal/ledger/service/syncer"
	"github.com/evtlabs/ledgersight-backend/internal/metrics"
)

type config struct {
	PostgresDSN     string `long:"postgres-dsn" env:"LEDGER_SYNCER_POSTGRES_DSN" description:"Postgres DSN"`
	BlocksFile      string `long:"blocks-file" env:"LEDGER_SYNCER_BLOCKS_FILE" description:"newline-delimited JSON block envelopes, '-' for stdin" default:"-"`
	BlocksPerSecond int    `long:"blocks-per-second" env:"LEDGER_SYNCER_BLOCKS_PER_SECOND" description:"apply rate limit" default:"1000"`
	MetricsAddr     string `long:"metrics-addr" env:"LEDGER_SYNCER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger syncer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(context.Background()); closeErr != nil {
			logger.Warn("close repository failed", zap.Error(closeErr))
		}
	}()

	source, closeSource, err := newBlockSource(cfg.BlocksFile)
	if err != nil {
		return fmt.Errorf("init block source: %w", err)
	}
	defer closeSource()

	svc, err := syncer.New(
		repo,
		source,
		metrics.NewSyncer(),
		logger,
		cfg.BlocksPerSecond,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newBlockSource(path string) (*chain.StreamSource, func(), error) {
	if path == "-" {
		return chain.NewStreamSource(os.Stdin), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open blocks file: %w", err)
	}
	return chain.NewStreamSource(f), func() { _ = f.Close() }, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
