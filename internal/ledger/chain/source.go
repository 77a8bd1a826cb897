// Package chain provides the ledger feed the write pipeline consumes.
package chain

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/model"
)

// TransactionEnvelope pairs a transaction with its ordered actions.
type TransactionEnvelope struct {
	Transaction model.Transaction `json:"transaction"`
	Actions     []model.Action    `json:"actions"`
}

// BlockEnvelope is one block's worth of pipeline input: the block, its
// transactions and the ids of blocks the ledger has since reported
// irreversible.
type BlockEnvelope struct {
	Block        model.Block           `json:"block"`
	Transactions []TransactionEnvelope `json:"transactions"`
	Irreversible []string              `json:"irreversible,omitempty"`
}

// Source yields block envelopes in chain order. Next returns io.EOF
// once the feed is drained.
type Source interface {
	Next(ctx context.Context) (*BlockEnvelope, error)
}

// maxEnvelopeSize bounds a single serialized envelope line.
const maxEnvelopeSize = 64 << 20

// StreamSource decodes newline-delimited JSON block envelopes from a
// reader, such as an exported chain segment.
type StreamSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewStreamSource wraps r in a block envelope stream.
func NewStreamSource(r io.Reader) *StreamSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64<<10), maxEnvelopeSize)
	return &StreamSource{scanner: scanner}
}

// Next returns the next envelope, skipping blank lines.
func (s *StreamSource) Next(ctx context.Context) (*BlockEnvelope, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, fmt.Errorf("read block stream: %w", err)
			}
			return nil, io.EOF
		}
		s.line++

		raw := s.scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var env BlockEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("decode block envelope at line %d: %w", s.line, err)
		}
		return &env, nil
	}
}
