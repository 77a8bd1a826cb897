package postgres

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/evtlabs/ledgersight-backend/internal/ledger/model"
)

// destroyedTokenOwner is the fixed burn address a destroyed token's
// owner set collapses to.
const destroyedTokenOwner = "EVT00000000000000000000000000000000000000000000000000"

// TranslateAction routes one ledger action into the statement log.
// Actions that don't mutate projected entities are ignored.
func (r *Repository) TranslateAction(t *TrxContext, act *model.Action) error {
	switch act.Name {
	case model.ActNewDomain:
		return unmarshalInto(act, t, r.AddDomain)
	case model.ActUpdateDomain:
		return unmarshalInto(act, t, r.UpdateDomain)
	case model.ActIssueToken:
		return unmarshalInto(act, t, r.IssueTokens)
	case model.ActTransfer:
		return unmarshalInto(act, t, r.TransferToken)
	case model.ActDestroyToken:
		return unmarshalInto(act, t, r.DestroyToken)
	case model.ActNewGroup:
		return unmarshalInto(act, t, r.AddGroup)
	case model.ActUpdateGroup:
		return unmarshalInto(act, t, r.UpdateGroup)
	case model.ActNewFungible:
		return unmarshalInto(act, t, r.AddFungible)
	case model.ActUpdFungible:
		return unmarshalInto(act, t, r.UpdateFungible)
	case model.ActAddMeta:
		var am model.AddMeta
		if err := json.Unmarshal(act.Data, &am); err != nil {
			return fmt.Errorf("decode %s payload: %w", act.Name, err)
		}
		return r.AddMeta(t, resolveMetaOwner(act.Domain, act.Key), &am)
	default:
		return nil
	}
}

func unmarshalInto[P any](act *model.Action, t *TrxContext, translate func(*TrxContext, *P) error) error {
	var payload P
	if err := json.Unmarshal(act.Data, &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", act.Name, err)
	}
	return translate(t, &payload)
}

// AddDomain logs the insert for a newdomain action.
func (r *Repository) AddDomain(t *TrxContext, nd *model.NewDomain) error {
	t.execute("new_domain",
		literal(nd.Name),
		literal(nd.Creator),
		literal(string(nd.Issue)),
		literal(string(nd.Transfer)),
		literal(string(nd.Manage)),
	)
	return nil
}

// UpdateDomain logs a wholesale replacement of the provided policy
// documents; absent documents keep their stored value.
func (r *Repository) UpdateDomain(t *TrxContext, ud *model.UpdateDomain) error {
	t.execute("upd_domain",
		jsonOrNull(ud.Issue),
		jsonOrNull(ud.Transfer),
		jsonOrNull(ud.Manage),
		literal(ud.Name),
	)
	return nil
}

// IssueTokens logs one insert per token name carried by the action.
// Every minted token shares the action's owner set verbatim.
func (r *Repository) IssueTokens(t *TrxContext, it *model.IssueToken) error {
	owners := arrayLiteral(it.Owner)
	for _, name := range it.Names {
		t.execute("issue_token",
			literal(it.Domain+":"+name),
			literal(it.Domain),
			literal(name),
			owners,
		)
	}
	return nil
}

// TransferToken logs the owner-set replacement for a transfer action.
func (r *Repository) TransferToken(t *TrxContext, tf *model.TransferToken) error {
	t.execute("transfer_token",
		arrayLiteral(tf.To),
		literal(tf.Domain+":"+tf.Name),
	)
	return nil
}

// DestroyToken logs the owner reset to the burn address.
func (r *Repository) DestroyToken(t *TrxContext, dt *model.DestroyToken) error {
	t.execute("destroy_token", literal(dt.Domain+":"+dt.Name))
	return nil
}

// AddGroup logs the insert for a newgroup action. Only the definition
// root is stored; the envelope name/key live in their own columns.
func (r *Repository) AddGroup(t *TrxContext, ng *model.NewGroup) error {
	t.execute("new_group",
		literal(ng.Name),
		literal(ng.Group.Key),
		literal(string(ng.Group.Root)),
	)
	return nil
}

// UpdateGroup logs a wholesale replacement of the group definition.
func (r *Repository) UpdateGroup(t *TrxContext, ug *model.UpdateGroup) error {
	t.execute("upd_group",
		literal(string(ug.Group.Root)),
		literal(ug.Name),
	)
	return nil
}

// AddFungible logs the insert for a newfungible action.
func (r *Repository) AddFungible(t *TrxContext, nf *model.NewFungible) error {
	symID, err := nf.Sym.ID()
	if err != nil {
		return err
	}
	t.execute("new_fungible",
		literal(nf.Name),
		literal(nf.SymName),
		literal(string(nf.Sym)),
		strconv.FormatUint(symID, 10),
		literal(nf.Creator),
		literal(string(nf.Issue)),
		literal(string(nf.Manage)),
	)
	return nil
}

// UpdateFungible logs a wholesale replacement of the provided policy
// documents; absent documents keep their stored value.
func (r *Repository) UpdateFungible(t *TrxContext, uf *model.UpdFungible) error {
	t.execute("upd_fungible",
		jsonOrNull(uf.Issue),
		jsonOrNull(uf.Manage),
		strconv.FormatUint(uf.SymID, 10),
	)
	return nil
}

// metaOwnerKind tags which owner table an addmeta action targets.
type metaOwnerKind int

const (
	metaOwnerToken metaOwnerKind = iota
	metaOwnerDomain
	metaOwnerGroup
	metaOwnerFungible
)

// metaOwner is the resolved target of an addmeta action: the owner
// kind plus the key addressing its row.
type metaOwner struct {
	kind metaOwnerKind
	key  string
}

// resolveMetaOwner decides the owning entity kind from the action's
// domain/key discriminators. The wire format carries no explicit kind
// tag: the reserved .fungible and .group domains mark fungibles and
// groups, the reserved .meta key marks the domain itself, anything
// else addresses the token domain:key.
func resolveMetaOwner(domain, key string) metaOwner {
	switch {
	case domain == model.FungibleMetaDomain:
		return metaOwner{kind: metaOwnerFungible, key: key}
	case domain == model.GroupMetaDomain:
		return metaOwner{kind: metaOwnerGroup, key: key}
	case key == model.DomainMetaKey:
		return metaOwner{kind: metaOwnerDomain, key: domain}
	default:
		return metaOwner{kind: metaOwnerToken, key: domain + ":" + key}
	}
}

// AddMeta logs the meta insert and the owner's metas-array append as
// one combined statement per owner kind.
func (r *Repository) AddMeta(t *TrxContext, owner metaOwner, am *model.AddMeta) error {
	stmt := ""
	ownerKey := ""
	switch owner.kind {
	case metaOwnerDomain:
		stmt, ownerKey = "add_meta_domain", literal(owner.key)
	case metaOwnerToken:
		stmt, ownerKey = "add_meta_token", literal(owner.key)
	case metaOwnerGroup:
		stmt, ownerKey = "add_meta_group", literal(owner.key)
	case metaOwnerFungible:
		id, err := strconv.ParseUint(owner.key, 10, 64)
		if err != nil {
			return fmt.Errorf("parse fungible sym id from meta key %q: %w", owner.key, err)
		}
		stmt, ownerKey = "add_meta_fungible", strconv.FormatUint(id, 10)
	default:
		return fmt.Errorf("unknown meta owner kind %d", owner.kind)
	}

	t.execute(stmt,
		literal(am.Key),
		literal(am.Value),
		literal(am.Creator),
		ownerKey,
	)
	return nil
}

// jsonOrNull renders an optional JSON document as a literal or NULL.
func jsonOrNull(doc json.RawMessage) string {
	if len(doc) == 0 {
		return "NULL"
	}
	return literal(string(doc))
}
