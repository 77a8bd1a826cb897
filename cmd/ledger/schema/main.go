// Schema admin tool: provisions or tears down the projected database
// and its tables. Destructive flags are explicit and never implied.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/repository/postgres"
	"github.com/evtlabs/ledgersight-backend/internal/metrics"
)

type config struct {
	PostgresDSN   string `long:"postgres-dsn" env:"LEDGER_SCHEMA_POSTGRES_DSN" description:"Postgres DSN (maintenance database for --create-db/--drop-db)"`
	CreateDB      string `long:"create-db" description:"create the named database"`
	DropDB        string `long:"drop-db" description:"drop the named database"`
	CreateTables  bool   `long:"create-tables" description:"create all tables and sequences (idempotent)"`
	DropTables    bool   `long:"drop-tables" description:"drop all tables"`
	DropSequences bool   `long:"drop-sequences" description:"drop all sequences"`
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
		logger.Fatal("schema tool failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(context.Background()); closeErr != nil {
			logger.Warn("close repository failed", zap.Error(closeErr))
		}
	}()

	ran := false

	if cfg.CreateDB != "" {
		ran = true
		exists, err := repo.DatabaseExists(ctx, cfg.CreateDB)
		if err != nil {
			return err
		}
		if exists {
			logger.Info("database already exists", zap.String("name", cfg.CreateDB))
		} else if err := repo.CreateDatabase(ctx, cfg.CreateDB); err != nil {
			return err
		} else {
			logger.Info("database created", zap.String("name", cfg.CreateDB))
		}
	}

	if cfg.DropDB != "" {
		ran = true
		if err := repo.DropDatabase(ctx, cfg.DropDB); err != nil {
			return err
		}
		logger.Info("database dropped", zap.String("name", cfg.DropDB))
	}

	if cfg.CreateTables {
		ran = true
		if err := repo.CreateAllTables(ctx); err != nil {
			return err
		}
		logger.Info("tables created")
	}

	if cfg.DropTables {
		ran = true
		if err := repo.DropAllTables(ctx); err != nil {
			return err
		}
		logger.Info("tables dropped")
	}

	if cfg.DropSequences {
		ran = true
		if err := repo.DropAllSequences(ctx); err != nil {
			return err
		}
		logger.Info("sequences dropped")
	}

	if !ran {
		return errors.New("nothing to do, pass at least one action flag")
	}
	return nil
}
