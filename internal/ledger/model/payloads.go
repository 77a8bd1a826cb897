package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Policy documents (issue/transfer/manage permissions and group
// definitions) are carried through as serialized JSON; the pipeline
// never interprets them.

// NewDomain is the payload of a newdomain action.
type NewDomain struct {
	Name     string          `json:"name"`
	Creator  string          `json:"creator"`
	Issue    json.RawMessage `json:"issue"`
	Transfer json.RawMessage `json:"transfer"`
	Manage   json.RawMessage `json:"manage"`
}

// UpdateDomain is the payload of an updatedomain action. Nil policy
// fields mean "keep the stored value".
type UpdateDomain struct {
	Name     string          `json:"name"`
	Issue    json.RawMessage `json:"issue,omitempty"`
	Transfer json.RawMessage `json:"transfer,omitempty"`
	Manage   json.RawMessage `json:"manage,omitempty"`
}

// IssueToken is the payload of an issuetoken action. One action mints
// every name listed, all sharing the same owner set.
type IssueToken struct {
	Domain string   `json:"domain"`
	Names  []string `json:"names"`
	Owner  []string `json:"owner"`
}

// TransferToken is the payload of a transfer action.
type TransferToken struct {
	Domain string   `json:"domain"`
	Name   string   `json:"name"`
	To     []string `json:"to"`
	Memo   string   `json:"memo,omitempty"`
}

// DestroyToken is the payload of a destroytoken action.
type DestroyToken struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
}

// GroupDef is the group document carried by newgroup/updategroup.
type GroupDef struct {
	Name string          `json:"name"`
	Key  string          `json:"key"`
	Root json.RawMessage `json:"root"`
}

// NewGroup is the payload of a newgroup action.
type NewGroup struct {
	Name  string   `json:"name"`
	Group GroupDef `json:"group"`
}

// UpdateGroup is the payload of an updategroup action.
type UpdateGroup struct {
	Name  string   `json:"name"`
	Group GroupDef `json:"group"`
}

// NewFungible is the payload of a newfungible action.
type NewFungible struct {
	Name    string          `json:"name"`
	SymName string          `json:"sym_name"`
	Sym     Symbol          `json:"sym"`
	Creator string          `json:"creator"`
	Issue   json.RawMessage `json:"issue"`
	Manage  json.RawMessage `json:"manage"`
}

// UpdFungible is the payload of an updfungible action. Nil policy
// fields mean "keep the stored value".
type UpdFungible struct {
	SymID  uint64          `json:"sym_id"`
	Issue  json.RawMessage `json:"issue,omitempty"`
	Manage json.RawMessage `json:"manage,omitempty"`
}

// AddMeta is the payload of an addmeta action. The owning entity is
// identified by the action's domain/key fields, not the payload.
type AddMeta struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Creator string `json:"creator"`
}

// Symbol is a fungible symbol string in "precision,S#id" form,
// e.g. "5,S#1". The numeric id after '#' is the fungibles primary key.
type Symbol string

// ID extracts the numeric symbol id.
func (s Symbol) ID() (uint64, error) {
	_, raw, ok := strings.Cut(string(s), "#")
	if !ok {
		return 0, fmt.Errorf("symbol %q has no id part", string(s))
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse symbol id from %q: %w", string(s), err)
	}
	return id, nil
}
