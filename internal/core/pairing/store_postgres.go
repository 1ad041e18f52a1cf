// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pairing

import (
	"context"
	"fmt"

	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/dberr"
	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository constructs a PostgreSQL backed pairing store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert writes pairing and fills in its surrogate id.
func (repository *PostgresRepository) Insert(ctx context.Context, pairing *Pairing) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Pairing.Table,
		schema.List("", schema.Pairing.Basis, schema.Pairing.PaintingID, schema.Pairing.PoemID),
		schema.Pairing.ID,
	)

	err := repository.db.QueryRow(ctx, query, string(pairing.Basis), pairing.PaintingID, pairing.PoemID).Scan(&pairing.ID)
	if err != nil {
		return fmt.Errorf("pairing: insert %s %d/%d: %w", pairing.Basis, pairing.PaintingID, pairing.PoemID, err)
	}
	return nil
}

// Truncate clears the pairing table.
func (repository *PostgresRepository) Truncate(ctx context.Context) error {
	return postgres.Truncate(ctx, repository.db, schema.Pairing.Table)
}

// ListByPainting implements [Repository].
func (repository *PostgresRepository) ListByPainting(ctx context.Context, paintingID int64) ([]*Detail, error) {
	query := fmt.Sprintf(`
		SELECT pr.%s, pr.%s, po.%s, po.%s
		FROM %s pr
		JOIN %s po ON po.%s = pr.%s
		WHERE pr.%s = $1
		ORDER BY pr.%s ASC
	`,
		schema.Pairing.ID, schema.Pairing.Basis, schema.Poem.ID, schema.Poem.Name,
		schema.Pairing.Table,
		schema.Poem.Table, schema.Poem.ID, schema.Pairing.PoemID,
		schema.Pairing.PaintingID,
		schema.Pairing.ID,
	)

	rows, err := repository.db.Query(ctx, query, paintingID)
	if err != nil {
		return nil, dberr.Wrap(err, "Pairing", "list_pairings")
	}
	defer rows.Close()

	details := []*Detail{}
	for rows.Next() {
		detail := &Detail{}
		var basis string
		if err := rows.Scan(&detail.ID, &basis, &detail.Poem.ID, &detail.Poem.Name); err != nil {
			return nil, dberr.Wrap(err, "Pairing", "scan_pairing")
		}
		detail.Basis = Basis(basis)
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Pairing", "iterate_pairings")
	}
	return details, nil
}
