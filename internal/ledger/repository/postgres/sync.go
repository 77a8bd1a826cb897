package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// LatestBlockID returns the block id of the highest-numbered row in
// the blocks table, reporting absence separately from failure.
func (r *Repository) LatestBlockID(ctx context.Context) (string, bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block_id", err, started)
	}()

	const stmt = `SELECT block_id FROM blocks ORDER BY block_num DESC LIMIT 1;`

	var blockID string
	scanErr := r.conn.QueryRow(ctx, stmt).Scan(&blockID)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return "", false, nil
	}
	if scanErr != nil {
		err = &ExecutionError{Stmt: stmt, Err: scanErr}
		return "", false, err
	}
	return blockID, true, nil
}

// BlockExists reports whether a block row with the given id exists.
func (r *Repository) BlockExists(ctx context.Context, blockID string) (bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_exists", err, started)
	}()

	const stmt = `SELECT block_id FROM blocks WHERE block_id = $1;`

	var found string
	scanErr := r.conn.QueryRow(ctx, stmt, blockID).Scan(&found)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return false, nil
	}
	if scanErr != nil {
		err = &ExecutionError{Stmt: stmt, Err: scanErr}
		return false, err
	}
	return true, nil
}

// AdvanceCheckpoint logs the checkpoint-stat update for a freshly
// applied block. It must be the last line of that block's statement
// log so the checkpoint and the mutation batch land together.
func (r *Repository) AdvanceCheckpoint(t *TrxContext, blockID string) {
	r.UpdateStat(t, statLastSyncBlock, blockID)
}

// CheckLastSyncBlock verifies the sync checkpoint on startup. The
// store is consistent only when the checkpoint stat equals the latest
// block row's id; anything else means a crash landed between the bulk
// flush and the checkpoint update, and recovery is an operator
// decision, not ours. Returns the checkpoint id on success.
func (r *Repository) CheckLastSyncBlock(ctx context.Context) (string, error) {
	syncID, found, err := r.ReadStat(ctx, statLastSyncBlock)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &SyncError{Reason: "last sync block id doesn't exist in current database"}
	}

	latestID, found, err := r.LatestBlockID(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &SyncError{Reason: "cannot get latest block id"}
	}
	if syncID != latestID {
		return "", &SyncError{Reason: "sync block and latest block don't match", SyncID: syncID, LatestID: latestID}
	}
	return syncID, nil
}
