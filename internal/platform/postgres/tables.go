// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
)

// DBTX is the subset of pgx shared by [*pgxpool.Pool], [*pgx.Conn] and [pgx.Tx].
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Truncate empties table and restarts its identity sequence.
//
// CASCADE is required because pairing references painting and poem; clearing
// either parent therefore also clears every pairing.
func Truncate(ctx context.Context, db DBTX, table string) error {
	if !schema.IsTable(table) {
		return fmt.Errorf("postgres: unknown table %q", table)
	}

	if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
		return fmt.Errorf("postgres: truncate %s: %w", table, err)
	}
	return nil
}

// Count returns the number of rows in table.
func Count(ctx context.Context, db DBTX, table string) (int, error) {
	if !schema.IsTable(table) {
		return 0, fmt.Errorf("postgres: unknown table %q", table)
	}

	var total int
	if err := db.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&total); err != nil {
		return 0, fmt.Errorf("postgres: count %s: %w", table, err)
	}
	return total, nil
}

// Tables binds [Truncate] and [Count] to one connection source.
type Tables struct {
	db DBTX
}

func NewTables(db DBTX) *Tables {
	return &Tables{db: db}
}

func (tables *Tables) Truncate(ctx context.Context, table string) error {
	return Truncate(ctx, tables.db, table)
}

func (tables *Tables) Count(ctx context.Context, table string) (int, error) {
	return Count(ctx, tables.db, table)
}
