// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/poem"
	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
	"github.com/taibuivan/ekphrasis/internal/platform/constants"
	"github.com/taibuivan/ekphrasis/internal/platform/validate"
	"github.com/taibuivan/ekphrasis/pkg/convert"
)

// Dataset column names.
const (
	columnID       = "ID"
	columnCategory = "Category"
	columnArtist   = "Artist"
	columnTitle    = "Title"
	columnYear     = "Year"
	columnInfoURL  = "Painting Info URL"
	columnPoet     = "Poet"
)

// CatalogReport summarises one table reload.
type CatalogReport struct {
	Table    string `json:"table"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

// LogValue implements [slog.LogValuer].
func (report CatalogReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("table", report.Table),
		slog.Int("inserted", report.Inserted),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
}

// CatalogLoader reloads the painting and poem tables.
type CatalogLoader struct {
	paintings painting.Repository
	poems     poem.Repository
	logger    *slog.Logger
}

func NewCatalogLoader(paintings painting.Repository, poems poem.Repository, logger *slog.Logger) *CatalogLoader {
	return &CatalogLoader{paintings: paintings, poems: poems, logger: logger}
}

// LoadPaintings clears the painting table and inserts one row per record of
// the painting TSV. An unparseable year is stored as NULL.
func (loader *CatalogLoader) LoadPaintings(ctx context.Context, rows Rows) (CatalogReport, error) {
	report := CatalogReport{Table: "painting"}

	if err := rows.Require(columnID, columnCategory, columnArtist, columnTitle, columnYear, columnInfoURL); err != nil {
		return report, err
	}

	if err := loader.paintings.Truncate(ctx); err != nil {
		return report, fmt.Errorf("ingest: clear paintings: %w", err)
	}

	err := eachRow(ctx, rows, func(row rowsource.Row) {
		name := strings.TrimSpace(row.Get(columnID))
		if !loader.keyPresent(ctx, row, name, &report) {
			return
		}

		record := &painting.Painting{
			Name:     name,
			Title:    convert.NullableString(row.Get(columnTitle)),
			Author:   convert.NullableString(row.Get(columnArtist)),
			Year:     convert.ToIntPtr(row.Get(columnYear)),
			Category: convert.NullableString(row.Get(columnCategory)),
			InfoURL:  convert.NullableString(row.Get(columnInfoURL)),
		}
		loader.insert(ctx, &report, row, func() error { return loader.paintings.Insert(ctx, record) })
	})

	loader.logger.InfoContext(ctx, "catalog_load_finished", slog.Any("report", report))
	return report, err
}

// LoadPoems clears the poem table, then inserts the emotion poems (name
// only) followed by the poetry collection (name, title, poet).
func (loader *CatalogLoader) LoadPoems(ctx context.Context, emotionRows, poetryRows Rows) (CatalogReport, error) {
	report := CatalogReport{Table: "poem"}

	if err := emotionRows.Require(columnID); err != nil {
		return report, err
	}
	if err := poetryRows.Require(columnID, columnPoet, columnTitle); err != nil {
		return report, err
	}

	if err := loader.poems.Truncate(ctx); err != nil {
		return report, fmt.Errorf("ingest: clear poems: %w", err)
	}

	err := eachRow(ctx, emotionRows, func(row rowsource.Row) {
		id := strings.TrimSpace(row.Get(columnID))
		if !loader.keyPresent(ctx, row, id, &report) {
			return
		}

		record := &poem.Poem{Name: poem.Name(id, poem.DatasetEmotion)}
		loader.insert(ctx, &report, row, func() error { return loader.poems.Insert(ctx, record) })
	})
	if err != nil {
		return report, err
	}

	err = eachRow(ctx, poetryRows, func(row rowsource.Row) {
		id := strings.TrimSpace(row.Get(columnID))
		if !loader.keyPresent(ctx, row, id, &report) {
			return
		}

		record := &poem.Poem{
			Name:   poem.Name(id, poem.DatasetPoetry),
			Title:  convert.NullableString(row.Get(columnTitle)),
			Author: convert.NullableString(row.Get(columnPoet)),
		}
		loader.insert(ctx, &report, row, func() error { return loader.poems.Insert(ctx, record) })
	})

	loader.logger.InfoContext(ctx, "catalog_load_finished", slog.Any("report", report))
	return report, err
}

// keyPresent rejects rows without a business key.
func (loader *CatalogLoader) keyPresent(ctx context.Context, row rowsource.Row, key string, report *CatalogReport) bool {
	if err := (&validate.Validator{}).Required(columnID, key).Err(); err != nil {
		report.Skipped++
		loader.logger.WarnContext(ctx, "catalog_row_without_id",
			slog.String("table", report.Table),
			slog.Int("line", row.Line()),
		)
		return false
	}
	return true
}

func (loader *CatalogLoader) insert(ctx context.Context, report *CatalogReport, row rowsource.Row, write func() error) {
	if err := write(); err != nil {
		report.Failed++
		loader.logger.ErrorContext(ctx, "catalog_insert_failed",
			slog.String("table", report.Table),
			slog.Int("line", row.Line()),
			slog.String("error", err.Error()),
		)
		return
	}

	report.Inserted++
	if report.Inserted%constants.IngestProgressEvery == 0 {
		loader.logger.InfoContext(ctx, "catalog_load_progress",
			slog.String("table", report.Table),
			slog.Int("inserted", report.Inserted),
		)
	}
}

// eachRow feeds every row to handle until EOF, a read error or cancellation.
func eachRow(ctx context.Context, rows Rows, handle func(rowsource.Row)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		handle(row)
	}
}
