package model

import "time"

// TrxType describes how a transaction entered the chain.
type TrxType string

var (
	// TrxInput is a regular signed transaction.
	TrxInput TrxType = "input"
	// TrxSuspend is a deferred transaction released from suspension.
	TrxSuspend TrxType = "suspend"
)

// TrxStatus is the execution status recorded in the transaction receipt.
type TrxStatus string

var (
	// TrxExecuted marks a successfully executed transaction.
	TrxExecuted TrxStatus = "executed"
	// TrxSoftFail marks a transaction whose error handler ran.
	TrxSoftFail TrxStatus = "softfail"
	// TrxHardFail marks a transaction whose error handler also failed.
	TrxHardFail TrxStatus = "hardfail"
)

// Transaction represents one ledger transaction persisted to the
// transactions table. BlockID and BlockNum tie the row to its block;
// SeqNum is the position within that block.
type Transaction struct {
	ID          string    `json:"id"`
	SeqNum      int       `json:"seq_num"`
	BlockID     string    `json:"block_id"`
	BlockNum    uint32    `json:"block_num"`
	ActionCount int       `json:"action_count"`
	Timestamp   time.Time `json:"timestamp"`
	Expiration  time.Time `json:"expiration"`
	MaxCharge   uint32    `json:"max_charge"`
	Payer       string    `json:"payer"`
	Type        TrxType   `json:"type"`
	Status      TrxStatus `json:"status"`
	Signatures  []string  `json:"signatures"`
	Keys        []string  `json:"keys"`
	Elapsed     int64     `json:"elapsed"`
	Charge      int64     `json:"charge"`
	SuspendName string    `json:"suspend_name,omitempty"`
}
