// Package postgres projects ledger blocks into a Postgres database
// through a dual-path write pipeline: COPY streams for append-only
// rows and a buffered prepared-statement log for entity mutations.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the single database session the repository writes
	// through. ExecBatch runs a multi-statement text in one simple
	// protocol round trip; CopyTo streams pre-formatted COPY text
	// rows into a table.
	Conn interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		ExecBatch(ctx context.Context, sql string) error
		CopyTo(ctx context.Context, table string, data string) error
		Close(ctx context.Context) error
	}
)

// Repository owns one Postgres session. All writes for one block must
// complete before the next block's begin; the statement log relies on
// the flush order, not on shared locks.
type Repository struct {
	conn     Conn
	metrics  Metrics
	prepared map[string]bool
}

// NewRepository connects a single session to the given DSN.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, &ConnectionError{Err: fmt.Errorf("postgres dsn is required")}
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("parse postgres dsn: %w", err)}
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	return &Repository{
		conn:     &pgxConn{conn: conn},
		metrics:  metrics,
		prepared: make(map[string]bool),
	}, nil
}

// Close releases the session.
func (r *Repository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

// pgxConn adapts *pgx.Conn to the Conn interface. Multi-statement and
// COPY round trips go through the underlying pgconn directly since the
// extended protocol used by pgx.Conn.Exec rejects multiple statements.
type pgxConn struct {
	conn *pgx.Conn
}

func (c *pgxConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, sql, args...)
}

func (c *pgxConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.conn.QueryRow(ctx, sql, args...)
}

func (c *pgxConn) ExecBatch(ctx context.Context, sql string) error {
	_, err := c.conn.PgConn().Exec(ctx, sql).ReadAll()
	return err
}

func (c *pgxConn) CopyTo(ctx context.Context, table string, data string) error {
	stmt := fmt.Sprintf("COPY %s FROM STDIN;", pgx.Identifier{table}.Sanitize())
	_, err := c.conn.PgConn().CopyFrom(ctx, strings.NewReader(data), stmt)
	return err
}

func (c *pgxConn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
