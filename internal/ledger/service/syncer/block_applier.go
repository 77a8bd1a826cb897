package syncer

import (
	"context"
	"time"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/chain"
)

// ApplyBlock pushes one block envelope through both write paths. The
// copy buffer flushes first; the statement log follows with the
// checkpoint update as its last line, so a crash between the two round
// trips is exactly the divergence the startup check detects.
func (s *Service) ApplyBlock(ctx context.Context, env *chain.BlockEnvelope) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveApplyBlock(err, len(env.Transactions), started)
	}()

	cctx := s.repo.NewCopyContext()
	tctx := s.repo.NewTrxContext()

	block := env.Block
	block.TrxCount = len(env.Transactions)
	cctx.AppendBlockRow(&block)

	for i := range env.Transactions {
		te := &env.Transactions[i]

		trx := te.Transaction
		trx.SeqNum = i
		trx.BlockID = block.ID
		trx.BlockNum = block.Num
		trx.ActionCount = len(te.Actions)
		if trx.Timestamp.IsZero() {
			trx.Timestamp = block.Timestamp
		}
		cctx.AppendTransactionRow(&trx)

		for j := range te.Actions {
			act := te.Actions[j]
			act.SeqNum = j
			act.BlockID = block.ID
			act.BlockNum = block.Num
			act.TrxID = trx.ID
			cctx.AppendActionRow(&act)

			if err = s.repo.TranslateAction(tctx, &act); err != nil {
				return err
			}
		}
	}

	for _, id := range env.Irreversible {
		s.repo.SetBlockIrreversible(tctx, id)
	}

	if err = s.repo.CommitCopyContext(ctx, cctx); err != nil {
		return err
	}

	// Checkpoint advance is the final log line: it succeeds or fails
	// together with the block's mutation batch.
	s.repo.AdvanceCheckpoint(tctx, block.ID)
	err = s.repo.CommitTrxContext(ctx, tctx)
	return err
}
