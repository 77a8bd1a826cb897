package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Statements invoked from the buffered statement log. Each is
// registered with the server via PREPARE exactly once per session and
// referenced by name in EXECUTE lines afterwards. PREPARE analyzes the
// statement, so tables must exist before Prepare runs.
var preparedStatements = map[string]string{
	"set_block_irreversible": `UPDATE blocks SET pending = false WHERE block_id = $1;`,
	"set_trxs_irreversible":  `UPDATE transactions SET pending = false WHERE block_id = $1;`,
	// ON CONFLICT: a crash after the stats seed but before the first
	// block leaves the blocks table empty, so the next startup replays
	// the seed against existing rows.
	"add_stat": `INSERT INTO stats VALUES($1, $2, now(), now()) ON CONFLICT (key) DO NOTHING;`,
	"upd_stat": `UPDATE stats SET value = $1, updated_at = now() WHERE key = $2;`,

	"new_domain": `INSERT INTO domains VALUES($1, $2, $3, $4, $5, '{}', now());`,
	"upd_domain": `UPDATE domains SET issue = COALESCE($1, issue), transfer = COALESCE($2, transfer), manage = COALESCE($3, manage) WHERE name = $4;`,

	"issue_token":    `INSERT INTO tokens VALUES($1, $2, $3, $4, '{}', now());`,
	"transfer_token": `UPDATE tokens SET owner = $1 WHERE id = $2;`,
	"destroy_token":  `UPDATE tokens SET owner = '{"` + destroyedTokenOwner + `"}' WHERE id = $1;`,

	"new_group": `INSERT INTO groups VALUES($1, $2, $3, '{}', now());`,
	"upd_group": `UPDATE groups SET def = $1 WHERE name = $2;`,

	"new_fungible": `INSERT INTO fungibles VALUES($1, $2, $3, $4, $5, $6, $7, '{}', now());`,
	"upd_fungible": `UPDATE fungibles SET issue = COALESCE($1, issue), manage = COALESCE($2, manage) WHERE sym_id = $3;`,

	// Meta attachment threads the freshly assigned meta id into the
	// owner's metas array inside a single statement, so no session
	// state (lastval) survives between log lines.
	"add_meta_domain": `WITH m AS (INSERT INTO metas VALUES(DEFAULT, $1, $2, $3, now()) RETURNING id)
UPDATE domains SET metas = array_append(metas, (SELECT id FROM m)) WHERE name = $4;`,
	"add_meta_token": `WITH m AS (INSERT INTO metas VALUES(DEFAULT, $1, $2, $3, now()) RETURNING id)
UPDATE tokens SET metas = array_append(metas, (SELECT id FROM m)) WHERE id = $4;`,
	"add_meta_group": `WITH m AS (INSERT INTO metas VALUES(DEFAULT, $1, $2, $3, now()) RETURNING id)
UPDATE groups SET metas = array_append(metas, (SELECT id FROM m)) WHERE name = $4;`,
	"add_meta_fungible": `WITH m AS (INSERT INTO metas VALUES(DEFAULT, $1, $2, $3, now()) RETURNING id)
UPDATE fungibles SET metas = array_append(metas, (SELECT id FROM m)) WHERE sym_id = $4;`,
}

// Prepare registers every statement with the session. Repeated calls
// are no-ops for statements already prepared.
func (r *Repository) Prepare(ctx context.Context) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("prepare_statements", err, started)
	}()

	names := make([]string, 0, len(preparedStatements))
	for name := range preparedStatements {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if r.prepared[name] {
			continue
		}
		stmt := fmt.Sprintf("PREPARE %s AS %s", name, preparedStatements[name])
		if _, execErr := r.conn.Exec(ctx, stmt); execErr != nil {
			err = &ExecutionError{Stmt: stmt, Err: execErr}
			return err
		}
		r.prepared[name] = true
	}
	return nil
}
