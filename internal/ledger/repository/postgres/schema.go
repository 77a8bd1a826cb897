package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Table DDL is embedded and idempotent; the deployed column layout is
// load-bearing and must not drift.

const createStatsTable = `CREATE TABLE IF NOT EXISTS public.stats
(
    key         character varying(21)    NOT NULL,
    value       character varying(64)    NOT NULL,
    created_at  timestamp with time zone NOT NULL DEFAULT now(),
    updated_at  timestamp with time zone NOT NULL DEFAULT now(),
    CONSTRAINT  stats_pkey PRIMARY KEY (key)
);`

const createBlocksTable = `CREATE TABLE IF NOT EXISTS public.blocks
(
    block_id        character(64)            NOT NULL,
    block_num       integer                  NOT NULL,
    prev_block_id   character(64)            NOT NULL,
    timestamp       timestamp with time zone NOT NULL,
    trx_merkle_root character(64)            NOT NULL,
    trx_count       integer                  NOT NULL,
    producer        character varying(21)    NOT NULL,
    pending         boolean                  NOT NULL DEFAULT true,
    created_at      timestamp with time zone NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS block_id_index
    ON public.blocks USING btree
    (block_id);
CREATE INDEX IF NOT EXISTS block_num_index
    ON public.blocks USING btree
    (block_num);`

const createTransactionsTable = `CREATE TABLE IF NOT EXISTS public.transactions
(
    trx_id        character(64)            NOT NULL,
    seq_num       integer                  NOT NULL,
    block_id      character(64)            NOT NULL,
    block_num     integer                  NOT NULL,
    action_count  integer                  NOT NULL,
    timestamp     timestamp with time zone NOT NULL,
    expiration    timestamp with time zone NOT NULL,
    max_charge    integer                  NOT NULL,
    payer         character(53)            NOT NULL,
    pending       boolean                  NOT NULL DEFAULT true,
    type          character varying(7)     NOT NULL,
    status        character varying(9)     NOT NULL,
    signatures    character(120)[]         NOT NULL,
    keys          character(53)[]          NOT NULL,
    elapsed       integer                  NOT NULL,
    charge        integer                  NOT NULL,
    suspend_name  character varying(21),
    created_at    timestamp with time zone NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS trx_block_num_index
    ON public.transactions USING btree
    (block_num);`

const createActionsTable = `CREATE TABLE IF NOT EXISTS public.actions
(
    block_id   character(64)            NOT NULL,
    block_num  integer                  NOT NULL,
    trx_id     character varying(64)    NOT NULL,
    seq_num    integer                  NOT NULL,
    name       character varying(13)    NOT NULL,
    domain     character varying(21)    NOT NULL,
    key        character varying(21)    NOT NULL,
    data       jsonb                    NOT NULL,
    created_at timestamp with time zone NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS trx_id_index
    ON public.actions USING btree
    (trx_id);`

const createMetasTable = `CREATE SEQUENCE IF NOT EXISTS metas_id_seq;
CREATE TABLE IF NOT EXISTS metas
(
    id         integer                   NOT NULL  DEFAULT nextval('metas_id_seq'),
    key        character varying(21)     NOT NULL,
    value      text                      NOT NULL,
    creator    character varying(57)     NOT NULL,
    created_at timestamp with time zone  NOT NULL  DEFAULT now(),
    CONSTRAINT metas_pkey PRIMARY KEY (id)
);`

const createDomainsTable = `CREATE TABLE IF NOT EXISTS public.domains
(
    name       character varying(21)       NOT NULL,
    creator    character(53)               NOT NULL,
    issue      jsonb                       NOT NULL,
    transfer   jsonb                       NOT NULL,
    manage     jsonb                       NOT NULL,
    metas      integer[]                   NOT NULL,
    created_at timestamp with time zone    NOT NULL  DEFAULT now(),
    CONSTRAINT domains_pkey PRIMARY KEY (name)
);
CREATE INDEX IF NOT EXISTS domain_creator_index
    ON public.domains USING btree
    (creator);`

const createTokensTable = `CREATE TABLE IF NOT EXISTS public.tokens
(
    id         character varying(42)       NOT NULL,
    domain     character varying(21)       NOT NULL,
    name       character varying(21)       NOT NULL,
    owner      character(53)[]             NOT NULL,
    metas      integer[]                   NOT NULL,
    created_at timestamp with time zone    NOT NULL  DEFAULT now(),
    CONSTRAINT tokens_pkey PRIMARY KEY (id)
);
CREATE INDEX IF NOT EXISTS owner_index
    ON public.tokens USING btree
    (owner);`

const createGroupsTable = `CREATE TABLE IF NOT EXISTS public.groups
(
    name       character varying(21)       NOT NULL,
    key        character(53)               NOT NULL,
    def        jsonb                       NOT NULL,
    metas      integer[]                   NOT NULL,
    created_at timestamp with time zone    NOT NULL  DEFAULT now(),
    CONSTRAINT groups_pkey PRIMARY KEY (name)
);
CREATE INDEX IF NOT EXISTS group_key_index
    ON public.groups USING btree
    (key);`

const createFungiblesTable = `CREATE TABLE IF NOT EXISTS public.fungibles
(
    name       character varying(21)       NOT NULL,
    sym_name   character varying(21)       NOT NULL,
    sym        character varying(21)       NOT NULL,
    sym_id     bigint                      NOT NULL,
    creator    character(53)               NOT NULL,
    issue      jsonb                       NOT NULL,
    manage     jsonb                       NOT NULL,
    metas      integer[]                   NOT NULL,
    created_at timestamp with time zone    NOT NULL  DEFAULT now(),
    CONSTRAINT fungibles_pkey PRIMARY KEY (sym_id)
);
CREATE INDEX IF NOT EXISTS fungible_creator_index
    ON public.fungibles USING btree
    (creator);`

var createTableStmts = []string{
	createStatsTable,
	createBlocksTable,
	createTransactionsTable,
	createMetasTable,
	createActionsTable,
	createDomainsTable,
	createTokensTable,
	createGroupsTable,
	createFungiblesTable,
}

var allTables = []string{
	"stats",
	"blocks",
	"transactions",
	"metas",
	"actions",
	"domains",
	"tokens",
	"groups",
	"fungibles",
}

var allSequences = []string{"metas_id_seq"}

// CreateDatabase creates the named database. The session must be
// connected to a maintenance database.
func (r *Repository) CreateDatabase(ctx context.Context, name string) error {
	stmt := fmt.Sprintf(`CREATE DATABASE %s
WITH
ENCODING = 'UTF8'
LC_COLLATE = 'C'
LC_CTYPE = 'C'
CONNECTION LIMIT = -1;`, pgx.Identifier{name}.Sanitize())

	if _, err := r.conn.Exec(ctx, stmt); err != nil {
		return &SchemaError{Stmt: stmt, Err: err}
	}
	return nil
}

// DropDatabase drops the named database.
func (r *Repository) DropDatabase(ctx context.Context, name string) error {
	stmt := fmt.Sprintf("DROP DATABASE %s;", pgx.Identifier{name}.Sanitize())
	if _, err := r.conn.Exec(ctx, stmt); err != nil {
		return &SchemaError{Stmt: stmt, Err: err}
	}
	return nil
}

// DatabaseExists reports whether the named database exists.
func (r *Repository) DatabaseExists(ctx context.Context, name string) (bool, error) {
	const stmt = `SELECT EXISTS(
SELECT datname
FROM pg_catalog.pg_database WHERE datname = $1
);`

	var exists bool
	if err := r.conn.QueryRow(ctx, stmt, name).Scan(&exists); err != nil {
		return false, &ExecutionError{Stmt: stmt, Err: err}
	}
	return exists, nil
}

// CreateAllTables creates every table, index and sequence the pipeline
// writes to. Idempotent: every statement uses IF NOT EXISTS.
func (r *Repository) CreateAllTables(ctx context.Context) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_all_tables", err, started)
	}()

	for _, stmt := range createTableStmts {
		if err = r.conn.ExecBatch(ctx, stmt); err != nil {
			err = &SchemaError{Stmt: stmt, Err: err}
			return err
		}
	}
	return nil
}

// DropAllTables drops every projected table.
func (r *Repository) DropAllTables(ctx context.Context) error {
	for _, table := range allTables {
		stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s;", pgx.Identifier{table}.Sanitize())
		if _, err := r.conn.Exec(ctx, stmt); err != nil {
			return &SchemaError{Stmt: stmt, Err: err}
		}
	}
	return nil
}

// DropAllSequences drops the sequences behind auto-incrementing ids.
func (r *Repository) DropAllSequences(ctx context.Context) error {
	for _, seq := range allSequences {
		stmt := fmt.Sprintf("DROP SEQUENCE IF EXISTS %s;", pgx.Identifier{seq}.Sanitize())
		if _, err := r.conn.Exec(ctx, stmt); err != nil {
			return &SchemaError{Stmt: stmt, Err: err}
		}
	}
	return nil
}

// TableIsEmpty reports whether the table has no block rows. Only block
// shaped tables are checked during startup.
func (r *Repository) TableIsEmpty(ctx context.Context, table string) (bool, error) {
	stmt := fmt.Sprintf("SELECT block_id FROM %s LIMIT 1;", pgx.Identifier{table}.Sanitize())

	var blockID string
	err := r.conn.QueryRow(ctx, stmt).Scan(&blockID)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, &ExecutionError{Stmt: stmt, Err: err}
	}
	return false, nil
}
