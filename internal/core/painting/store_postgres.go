// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/dberr"
	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

const resourceName = "Painting"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository constructs a PostgreSQL backed painting store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectColumns() string {
	return schema.List("",
		schema.Painting.ID, schema.Painting.Name, schema.Painting.Title, schema.Painting.Author,
		schema.Painting.Year, schema.Painting.Category, schema.Painting.InfoURL,
	)
}

func scanPainting(row pgx.Row) (*Painting, error) {
	painting := &Painting{}
	err := row.Scan(
		&painting.ID, &painting.Name, &painting.Title, &painting.Author,
		&painting.Year, &painting.Category, &painting.InfoURL,
	)
	return painting, err
}

// List implements [Repository].
func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Painting, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.Painting.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_paintings")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`,
		selectColumns(), schema.Painting.Table, schema.Painting.ID,
	)

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_paintings")
	}
	defer rows.Close()

	paintings := []*Painting{}
	for rows.Next() {
		painting, err := scanPainting(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_painting")
		}
		paintings = append(paintings, painting)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "iterate_paintings")
	}
	return paintings, total, nil
}

// FindByOrdinal implements [Repository].
func (repository *PostgresRepository) FindByOrdinal(ctx context.Context, offset int) (*Painting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT 1 OFFSET $1`,
		selectColumns(), schema.Painting.Table, schema.Painting.ID,
	)

	painting, err := scanPainting(repository.db.QueryRow(ctx, query, offset))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_painting_by_ordinal")
	}
	return painting, nil
}

// Insert writes painting and fills in its surrogate id.
func (repository *PostgresRepository) Insert(ctx context.Context, painting *Painting) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6) RETURNING %s`,
		schema.Painting.Table,
		schema.List("",
			schema.Painting.Name, schema.Painting.Title, schema.Painting.Author,
			schema.Painting.Year, schema.Painting.Category, schema.Painting.InfoURL,
		),
		schema.Painting.ID,
	)

	err := repository.db.QueryRow(ctx, query,
		painting.Name, painting.Title, painting.Author, painting.Year, painting.Category, painting.InfoURL,
	).Scan(&painting.ID)
	if err != nil {
		return fmt.Errorf("painting: insert %q: %w", painting.Name, err)
	}
	return nil
}

// Truncate clears the painting table (and, by cascade, every pairing).
func (repository *PostgresRepository) Truncate(ctx context.Context) error {
	return postgres.Truncate(ctx, repository.db, schema.Painting.Table)
}
