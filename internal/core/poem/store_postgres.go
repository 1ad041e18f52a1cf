// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package poem

import (
	"context"
	"fmt"

	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository constructs a PostgreSQL backed poem store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert writes poem and fills in its surrogate id.
func (repository *PostgresRepository) Insert(ctx context.Context, poem *Poem) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Poem.Table,
		schema.List("", schema.Poem.Name, schema.Poem.Title, schema.Poem.Author),
		schema.Poem.ID,
	)

	if err := repository.db.QueryRow(ctx, query, poem.Name, poem.Title, poem.Author).Scan(&poem.ID); err != nil {
		return fmt.Errorf("poem: insert %q: %w", poem.Name, err)
	}
	return nil
}

// Truncate clears the poem table (and, by cascade, every pairing).
func (repository *PostgresRepository) Truncate(ctx context.Context) error {
	return postgres.Truncate(ctx, repository.db, schema.Poem.Table)
}
