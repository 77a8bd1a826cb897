package postgres

import (
	"bytes"
	"context"
	"strings"
	"time"
)

// TrxContext accumulates an ordered log of EXECUTE lines against
// previously prepared statements, scoped to one block's mutating
// actions and bookkeeping updates. Arguments are inlined as escaped
// literals; every value must pass through literal escaping before it
// reaches a line.
type TrxContext struct {
	buf bytes.Buffer
}

// NewTrxContext opens a statement log for one block's mutations.
func (r *Repository) NewTrxContext() *TrxContext {
	return &TrxContext{}
}

// execute appends one invocation line. Arguments must already be
// rendered as SQL expressions (quoted literals, numbers or NULL).
func (t *TrxContext) execute(name string, args ...string) {
	t.buf.WriteString("EXECUTE ")
	t.buf.WriteString(name)
	t.buf.WriteByte('(')
	t.buf.WriteString(strings.Join(args, ","))
	t.buf.WriteString(");\n")
}

// Empty reports whether no lines were logged.
func (t *TrxContext) Empty() bool {
	return t.buf.Len() == 0
}

// Statements returns the accumulated log text.
func (t *TrxContext) Statements() string {
	return t.buf.String()
}

// CommitTrxContext submits the whole log as one round trip inside an
// explicit transaction, so a failing line rolls back every line. An
// empty log performs no round trip. Failures are fatal for the block;
// there are no per-statement partial-success semantics.
func (r *Repository) CommitTrxContext(ctx context.Context, t *TrxContext) error {
	if t.Empty() {
		return nil
	}

	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("commit_trx_context", err, started)
	}()

	stmts := "BEGIN;\n" + t.Statements() + "COMMIT;\n"
	if execErr := r.conn.ExecBatch(ctx, stmts); execErr != nil {
		// A failed line aborts the explicit transaction without running
		// the trailing COMMIT; reset the session before surfacing.
		_, _ = r.conn.Exec(ctx, "ROLLBACK;")
		err = &ExecutionError{Stmt: stmts, Err: execErr}
		return err
	}
	return nil
}

// AddStat logs an insert of a fresh stats entry.
func (r *Repository) AddStat(t *TrxContext, key, value string) {
	t.execute("add_stat", literal(key), literal(value))
}

// UpdateStat logs an update of an existing stats entry.
func (r *Repository) UpdateStat(t *TrxContext, key, value string) {
	t.execute("upd_stat", literal(value), literal(key))
}

// SetBlockIrreversible logs the pending→final flip for a block and its
// transactions once the ledger reports irreversibility.
func (r *Repository) SetBlockIrreversible(t *TrxContext, blockID string) {
	t.execute("set_block_irreversible", literal(blockID))
	t.execute("set_trxs_irreversible", literal(blockID))
}
