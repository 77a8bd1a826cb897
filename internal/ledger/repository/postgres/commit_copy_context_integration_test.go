package postgres

import (
	"encoding/json"
	"time"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/model"
)

func (s *RepositorySuite) TestCommitCopyContextInsertsAllStreams() {
	ts := time.Now().UTC().Truncate(time.Millisecond)
	bID := blockID("a")
	tID := blockID("b")

	c := s.repo.NewCopyContext()
	c.AppendBlockRow(newBlock(bID, 1, ts))
	c.AppendTransactionRow(newTransaction(tID, bID, 1, ts))
	c.AppendActionRow(&model.Action{
		BlockID:  bID,
		BlockNum: 1,
		TrxID:    tID,
		SeqNum:   0,
		Name:     model.ActNewDomain,
		Domain:   "cookies",
		Key:      ".create",
		Data:     json.RawMessage(`{"name":"cookies"}`),
	})

	s.Require().NoError(s.repo.CommitCopyContext(s.testCtx, c))

	s.Equal(int64(1), s.countRows("blocks"))
	s.Equal(int64(1), s.countRows("transactions"))
	s.Equal(int64(1), s.countRows("actions"))

	// Fresh rows land pending; the flip happens via the statement log.
	var pending bool
	s.Require().NoError(s.repo.conn.QueryRow(s.testCtx,
		`SELECT pending FROM blocks WHERE block_id = $1`, bID).Scan(&pending))
	s.True(pending)

	var storedTS time.Time
	s.Require().NoError(s.repo.conn.QueryRow(s.testCtx,
		`SELECT timestamp FROM blocks WHERE block_id = $1`, bID).Scan(&storedTS))
	s.True(ts.Equal(storedTS.UTC()))

	var suspend *string
	s.Require().NoError(s.repo.conn.QueryRow(s.testCtx,
		`SELECT suspend_name FROM transactions WHERE trx_id = $1`, tID).Scan(&suspend))
	s.Nil(suspend)

	var sigCount int
	s.Require().NoError(s.repo.conn.QueryRow(s.testCtx,
		`SELECT array_length(signatures, 1) FROM transactions WHERE trx_id = $1`, tID).Scan(&sigCount))
	s.Equal(1, sigCount)
}

func (s *RepositorySuite) TestCommitCopyContextEscapingRoundTrip() {
	ts := time.Now().UTC().Truncate(time.Millisecond)
	bID := blockID("c")

	b := newBlock(bID, 2, ts)
	b.Producer = "evt\tpro\\d"

	c := s.repo.NewCopyContext()
	c.AppendBlockRow(b)
	s.Require().NoError(s.repo.CommitCopyContext(s.testCtx, c))

	var producer string
	s.Require().NoError(s.repo.conn.QueryRow(s.testCtx,
		`SELECT producer FROM blocks WHERE block_id = $1`, bID).Scan(&producer))
	s.Equal(b.Producer, producer)
}

func (s *RepositorySuite) TestCommitCopyContextConstraintViolationIsFatal() {
	c := s.repo.NewCopyContext()
	// block_id is NOT NULL; a null marker in that column rejects the
	// whole stream.
	c.blocks.WriteString(`\N` + "\t1\t" + blockID("0") + "\t2018-06-09T08:17:49.500Z\t" +
		blockID("f") + "\t1\tevt.prod\tt\tnow\n")

	err := s.repo.CommitCopyContext(s.testCtx, c)
	s.Require().Error(err)

	var execErr *ExecutionError
	s.Require().ErrorAs(err, &execErr)
	s.Equal(int64(0), s.countRows("blocks"))
}
