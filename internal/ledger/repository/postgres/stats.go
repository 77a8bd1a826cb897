package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// schemaVersion is the version string stamped into the stats map.
// Stored versions older than this are rejected at startup.
const schemaVersion = "1.0.0"

// Stats map keys the pipeline maintains.
const (
	statVersion       = "version"
	statLastSyncBlock = "last_sync_block_id"
)

// InitializeStats seeds the stats map on first run: the software
// version plus an empty checkpoint marker, committed atomically in
// one statement-log flush.
func (r *Repository) InitializeStats(ctx context.Context) error {
	t := r.NewTrxContext()
	r.AddStat(t, statVersion, schemaVersion)
	r.AddStat(t, statLastSyncBlock, "")
	return r.CommitTrxContext(ctx, t)
}

// ReadStat returns the value stored under key, reporting absence
// separately from failure.
func (r *Repository) ReadStat(ctx context.Context, key string) (string, bool, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("read_stat", err, started)
	}()

	const stmt = `SELECT value FROM stats WHERE key = $1;`

	var value string
	scanErr := r.conn.QueryRow(ctx, stmt, key).Scan(&value)
	if errors.Is(scanErr, pgx.ErrNoRows) {
		return "", false, nil
	}
	if scanErr != nil {
		err = &ExecutionError{Stmt: stmt, Err: scanErr}
		return "", false, err
	}
	return value, true, nil
}

// CheckVersion enforces the one-way version ratchet: a missing or
// lexicographically older stored version fails startup; equal or newer
// passes. Older stores are never auto-migrated.
func (r *Repository) CheckVersion(ctx context.Context) error {
	stored, found, err := r.ReadStat(ctx, statVersion)
	if err != nil {
		return err
	}
	if !found {
		return &VersionError{Running: schemaVersion}
	}
	if stored < schemaVersion {
		return &VersionError{Stored: stored, Running: schemaVersion}
	}
	return nil
}
