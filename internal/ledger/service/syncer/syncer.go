package syncer

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultBlocksPerSecond = 1000

// Service applies ledger blocks to the store strictly in order: the
// bulk append buffer for a block flushes before that block's statement
// log, and the checkpoint update is the log's final line. Any write
// failure stops ingestion; nothing is retried or skipped.
type Service struct {
	logger  *zap.Logger
	repo    PostgresRepository
	source  Source
	metrics SyncerMetrics
	rl      ratelimit.Limiter
}

// New builds a Service with dependencies. blocksPerSecond bounds the
// apply rate; zero applies the default.
func New(repo PostgresRepository, source Source, metrics SyncerMetrics, logger *zap.Logger, blocksPerSecond int) (*Service, error) {
	if repo == nil {
		return nil, errors.New("postgres repository is required")
	}
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if metrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if blocksPerSecond <= 0 {
		blocksPerSecond = defaultBlocksPerSecond
	}

	return &Service{
		logger:  logger.Named("syncer"),
		repo:    repo,
		source:  source,
		metrics: metrics,
		rl:      ratelimit.New(blocksPerSecond),
	}, nil
}

// Start runs the startup gate: provision tables, register prepared
// statements, then either seed the stats map on a fresh store or
// verify the version ratchet and the sync checkpoint.
func (s *Service) Start(ctx context.Context) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveStartup(err, started)
	}()

	if err = s.repo.CreateAllTables(ctx); err != nil {
		return err
	}
	if err = s.repo.Prepare(ctx); err != nil {
		return err
	}

	empty, err := s.repo.TableIsEmpty(ctx, "blocks")
	if err != nil {
		return err
	}
	if empty {
		s.logger.Info("fresh database, seeding stats")
		err = s.repo.InitializeStats(ctx)
		return err
	}

	if err = s.repo.CheckVersion(ctx); err != nil {
		return err
	}
	checkpoint, err := s.repo.CheckLastSyncBlock(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("resuming from checkpoint", zap.String("block_id", checkpoint))
	return nil
}

// Run executes the startup gate and then applies blocks until the
// source drains or the context is canceled. A failed block apply is
// fatal: retrying without idempotency guarantees could double-apply
// rows.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.rl.Take()

		env, err := s.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Info("block source drained")
			return nil
		}
		if err != nil {
			s.logger.Error("fetch next block failed", zap.Error(err))
			return err
		}

		if err := s.ApplyBlock(ctx, env); err != nil {
			s.logger.Error("apply block failed",
				zap.String("block_id", env.Block.ID),
				zap.Uint32("block_num", env.Block.Num),
				zap.Error(err),
			)
			return err
		}
		s.logger.Debug("block applied",
			zap.String("block_id", env.Block.ID),
			zap.Uint32("block_num", env.Block.Num),
			zap.Int("trxs", len(env.Transactions)),
		)
	}
}
