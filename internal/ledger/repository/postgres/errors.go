package postgres

import "fmt"

// ConnectionError reports a failure to reach or authenticate to the
// store. Fatal at startup.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("postgres connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError reports a DDL failure. Fatal at startup.
type SchemaError struct {
	Stmt string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema statement failed: %v, stmt: %s", e.Err, e.Stmt)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// VersionError reports a stored schema version that is absent or older
// than the running software. There is no auto-migration; the gate is a
// one-way ratchet.
type VersionError struct {
	Stored  string
	Running string
}

func (e *VersionError) Error() string {
	if e.Stored == "" {
		return "version information doesn't exist in current database"
	}
	return fmt.Sprintf("stored database version is obsolete, stored: %s, running: %s", e.Stored, e.Running)
}

// SyncError reports a checkpoint/latest-block mismatch at startup.
// Recovery is an operational decision, never automatic.
type SyncError struct {
	Reason   string
	SyncID   string
	LatestID string
}

func (e *SyncError) Error() string {
	if e.SyncID == "" && e.LatestID == "" {
		return "sync checkpoint: " + e.Reason
	}
	return fmt.Sprintf("sync checkpoint: %s, checkpoint: %q, latest: %q", e.Reason, e.SyncID, e.LatestID)
}

// ExecutionError reports a mid-run statement, prepared-statement or
// bulk-ingest failure. Fatal to the current block's commit; the
// pipeline never retries since retry could double-apply rows.
type ExecutionError struct {
	Stmt string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("postgres execution failed: %v, stmt: %s", e.Err, e.Stmt)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
