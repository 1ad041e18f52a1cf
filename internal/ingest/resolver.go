// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

// Kind selects the table a business key is looked up in.
type Kind string

const (
	KindPainting Kind = "painting"
	KindPoem     Kind = "poem"
)

// ErrKeyNotFound is returned when no row carries the requested name.
var ErrKeyNotFound = errors.New("ingest: key not found")

// KeyResolver maps a business key (the name column) to a surrogate id.
type KeyResolver interface {
	Resolve(ctx context.Context, kind Kind, key string) (int64, error)
}

// PostgresKeyResolver resolves keys with one exact, case-sensitive query per
// lookup. Nothing is cached.
type PostgresKeyResolver struct {
	db postgres.DBTX
}

func NewPostgresKeyResolver(db postgres.DBTX) *PostgresKeyResolver {
	return &PostgresKeyResolver{db: db}
}

// Resolve implements [KeyResolver].
func (resolver *PostgresKeyResolver) Resolve(ctx context.Context, kind Kind, key string) (int64, error) {
	var table, idColumn, nameColumn string
	switch kind {
	case KindPainting:
		table, idColumn, nameColumn = schema.Painting.Table, schema.Painting.ID, schema.Painting.Name
	case KindPoem:
		table, idColumn, nameColumn = schema.Poem.Table, schema.Poem.ID, schema.Poem.Name
	default:
		return 0, fmt.Errorf("ingest: unknown key kind %q", kind)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, idColumn, table, nameColumn)

	var id int64
	if err := resolver.db.QueryRow(ctx, query, key).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrKeyNotFound
		}
		return 0, fmt.Errorf("ingest: resolve %s %q: %w", kind, key, err)
	}
	return id, nil
}
