// Package syncer drives whole ledger blocks through the Postgres
// write pipeline, one block at a time.
package syncer

import (
	"context"
	"time"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/chain"
	"github.com/evtlabs/ledgersight-backend/internal/ledger/model"
	"github.com/evtlabs/ledgersight-backend/internal/ledger/repository/postgres"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source yields block envelopes in chain order; io.EOF ends the run.
	Source interface {
		Next(ctx context.Context) (*chain.BlockEnvelope, error)
	}

	// PostgresRepository is the write pipeline surface the syncer
	// drives. Contexts are scoped to exactly one block.
	PostgresRepository interface {
		CreateAllTables(ctx context.Context) error
		Prepare(ctx context.Context) error
		TableIsEmpty(ctx context.Context, table string) (bool, error)
		InitializeStats(ctx context.Context) error
		CheckVersion(ctx context.Context) error
		CheckLastSyncBlock(ctx context.Context) (string, error)

		NewCopyContext() *postgres.CopyContext
		CommitCopyContext(ctx context.Context, c *postgres.CopyContext) error
		NewTrxContext() *postgres.TrxContext
		CommitTrxContext(ctx context.Context, t *postgres.TrxContext) error

		TranslateAction(t *postgres.TrxContext, act *model.Action) error
		SetBlockIrreversible(t *postgres.TrxContext, blockID string)
		AdvanceCheckpoint(t *postgres.TrxContext, blockID string)
	}

	// SyncerMetrics observes pipeline progress.
	SyncerMetrics interface {
		ObserveApplyBlock(err error, trxs int, started time.Time)
		ObserveStartup(err error, started time.Time)
	}
)
