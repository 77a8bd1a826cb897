// Package model defines row and payload types for ledger projection.
package model

import "time"

// Block represents one ledger block persisted to the blocks table.
// Pending stays true until the ledger reports the block irreversible.
type Block struct {
	ID            string    `json:"id"`
	Num           uint32    `json:"num"`
	PrevID        string    `json:"prev_id"`
	Timestamp     time.Time `json:"timestamp"`
	TrxMerkleRoot string    `json:"trx_merkle_root"`
	TrxCount      int       `json:"trx_count"`
	Producer      string    `json:"producer"`
}
