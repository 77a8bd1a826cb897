package model

import "encoding/json"

// Action names emitted by the chain that mutate projected entities.
const (
	ActNewDomain    = "newdomain"
	ActUpdateDomain = "updatedomain"
	ActIssueToken   = "issuetoken"
	ActTransfer     = "transfer"
	ActDestroyToken = "destroytoken"
	ActNewGroup     = "newgroup"
	ActUpdateGroup  = "updategroup"
	ActNewFungible  = "newfungible"
	ActUpdFungible  = "updfungible"
	ActAddMeta      = "addmeta"
)

// Reserved domain and key markers used by addmeta actions to address
// non-token entities. The wire format carries no explicit entity-kind
// tag; these sentinels are the only discriminators.
const (
	FungibleMetaDomain = ".fungible"
	GroupMetaDomain    = ".group"
	DomainMetaKey      = ".meta"
)

// Action represents one action persisted to the actions table.
// Data is the action payload already serialized as a JSON document.
type Action struct {
	BlockID  string          `json:"block_id"`
	BlockNum uint32          `json:"block_num"`
	TrxID    string          `json:"trx_id"`
	SeqNum   int             `json:"seq_num"`
	Name     string          `json:"name"`
	Domain   string          `json:"domain"`
	Key      string          `json:"key"`
	Data     json.RawMessage `json:"data"`
}
