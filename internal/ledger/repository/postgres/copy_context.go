package postgres

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/model"
)

// copyTimeLayout renders timestamps in a form COPY parses into
// timestamptz columns unambiguously.
const copyTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// CopyContext accumulates COPY text rows for the three append-only
// streams of exactly one block. Row appends are pure formatting; no
// round trip happens before Commit.
type CopyContext struct {
	blocks       bytes.Buffer
	transactions bytes.Buffer
	actions      bytes.Buffer
}

// NewCopyContext opens a bulk append buffer for one block's rows.
func (r *Repository) NewCopyContext() *CopyContext {
	return &CopyContext{}
}

// AppendBlockRow formats one blocks-table row. New blocks enter
// pending and are flipped when the ledger reports irreversibility.
func (c *CopyContext) AppendBlockRow(b *model.Block) {
	fmt.Fprintf(&c.blocks, "%s\t%d\t%s\t%s\t%s\t%d\t%s\tt\t%s\n",
		copyText(b.ID),
		b.Num,
		copyText(b.PrevID),
		b.Timestamp.UTC().Format(copyTimeLayout),
		copyText(b.TrxMerkleRoot),
		b.TrxCount,
		copyText(b.Producer),
		copyNow,
	)
}

// AppendTransactionRow formats one transactions-table row.
func (c *CopyContext) AppendTransactionRow(t *model.Transaction) {
	suspend := copyNull
	if t.SuspendName != "" {
		suspend = copyText(t.SuspendName)
	}

	fmt.Fprintf(&c.transactions, "%s\t%d\t%s\t%d\t%d\t%s\t%s\t%d\t%s\tt\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
		copyText(t.ID),
		t.SeqNum,
		copyText(t.BlockID),
		t.BlockNum,
		t.ActionCount,
		t.Timestamp.UTC().Format(copyTimeLayout),
		t.Expiration.UTC().Format(copyTimeLayout),
		t.MaxCharge,
		copyText(t.Payer),
		copyText(string(t.Type)),
		copyText(string(t.Status)),
		copyText(arrayText(t.Signatures)),
		copyText(arrayText(t.Keys)),
		t.Elapsed,
		t.Charge,
		suspend,
		copyNow,
	)
}

// AppendActionRow formats one actions-table row. Rows are immutable
// once written.
func (c *CopyContext) AppendActionRow(a *model.Action) {
	fmt.Fprintf(&c.actions, "%s\t%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
		copyText(a.BlockID),
		a.BlockNum,
		copyText(a.TrxID),
		a.SeqNum,
		copyText(a.Name),
		copyText(a.Domain),
		copyText(a.Key),
		copyText(string(a.Data)),
		copyNow,
	)
}

// CommitCopyContext flushes each non-empty buffer as one COPY round
// trip, blocks first, then transactions, then actions. Empty buffers
// cost nothing. A COPY rejection is fatal for the block: COPY is
// all-or-nothing per table and a retry could double-apply rows.
func (r *Repository) CommitCopyContext(ctx context.Context, c *CopyContext) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("commit_copy_context", err, started)
	}()

	streams := []struct {
		table string
		buf   *bytes.Buffer
	}{
		{"blocks", &c.blocks},
		{"transactions", &c.transactions},
		{"actions", &c.actions},
	}
	for _, s := range streams {
		if s.buf.Len() == 0 {
			continue
		}
		if copyErr := r.conn.CopyTo(ctx, s.table, s.buf.String()); copyErr != nil {
			err = &ExecutionError{Stmt: "COPY " + s.table + " FROM STDIN", Err: copyErr}
			return err
		}
	}
	return nil
}
