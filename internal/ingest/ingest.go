// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ingest loads the offline datasets into the entity store.

# Pairings

Each scoring source names a painting and a poem by business key. For every
row the [PairingIngestor]:

 1. Normalises the painting key and derives the poem key.
 2. Applies the source filter, counting filtered rows as skipped.
 3. Resolves both keys; a missing side is logged and counted as not found.
 4. Inserts the pairing.

A pairing is therefore never written unless both of its rows exist. The run
is not transactional: store failures on single rows are counted and logged
and the run continues.

# Catalogue

The [CatalogLoader] reloads the painting and poem tables from their dataset
files. Clearing either table cascades into pairing, so pairings must be
loaded after the catalogue.
*/
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
	"github.com/taibuivan/ekphrasis/internal/platform/constants"
)

// Rows is a header-checked stream of dataset rows; [*rowsource.Reader]
// implements it.
type Rows interface {
	Require(columns ...string) error
	Next() (rowsource.Row, error)
}

// Report summarises one pairing source run.
type Report struct {
	Basis    pairing.Basis `json:"basis"`
	Inserted int           `json:"inserted"`
	NotFound int           `json:"not_found"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
}

// LogValue implements [slog.LogValuer].
func (report Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("basis", string(report.Basis)),
		slog.Int("inserted", report.Inserted),
		slog.Int("not_found", report.NotFound),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)
}

// PairingIngestor writes pairings from scoring sources.
type PairingIngestor struct {
	keys     KeyResolver
	pairings pairing.Repository
	logger   *slog.Logger
}

func NewPairingIngestor(keys KeyResolver, pairings pairing.Repository, logger *slog.Logger) *PairingIngestor {
	return &PairingIngestor{keys: keys, pairings: pairings, logger: logger}
}

// Ingest runs source over rows and returns the tally. An error is returned
// only when the run could not proceed (bad header, unreadable file, failed
// truncate or cancelled context); the report then holds the rows processed
// so far.
func (ingestor *PairingIngestor) Ingest(ctx context.Context, source Source, rows Rows) (Report, error) {
	report := Report{Basis: source.Basis}
	logger := ingestor.logger.With(slog.String("basis", string(source.Basis)))

	if err := rows.Require(source.Columns()...); err != nil {
		return report, err
	}

	if source.Truncate {
		if err := ingestor.pairings.Truncate(ctx); err != nil {
			return report, fmt.Errorf("ingest: clear pairings: %w", err)
		}
		logger.InfoContext(ctx, "pairings_cleared")
	}

	err := eachRow(ctx, rows, func(row rowsource.Row) {
		ingestor.ingestRow(ctx, logger, source, row, &report)
	})
	if err != nil {
		return report, fmt.Errorf("ingest: %s: %w", source.Basis, err)
	}

	logger.InfoContext(ctx, "pairing_ingest_finished", slog.Any("report", report))
	return report, nil
}

func (ingestor *PairingIngestor) ingestRow(ctx context.Context, logger *slog.Logger, source Source, row rowsource.Row, report *Report) {
	candidate, skip := source.parse(row)
	if skip {
		report.Skipped++
		return
	}

	paintingID, paintingErr := ingestor.keys.Resolve(ctx, KindPainting, candidate.paintingName)
	poemID, poemErr := ingestor.keys.Resolve(ctx, KindPoem, candidate.poemName)

	// Anything but not-found is a store failure for this row.
	for _, err := range []error{paintingErr, poemErr} {
		if err != nil && !errors.Is(err, ErrKeyNotFound) {
			report.Failed++
			logger.ErrorContext(ctx, "pairing_lookup_failed",
				slog.Int("line", row.Line()),
				slog.String("error", err.Error()),
			)
			return
		}
	}

	if paintingErr != nil || poemErr != nil {
		report.NotFound++
		if paintingErr != nil {
			logger.WarnContext(ctx, "painting_not_found",
				slog.Int("line", row.Line()),
				slog.String("painting", candidate.paintingName),
			)
		}
		if poemErr != nil {
			logger.WarnContext(ctx, "poem_not_found",
				slog.Int("line", row.Line()),
				slog.String("poem", candidate.poemName),
			)
		}
		return
	}

	record := &pairing.Pairing{Basis: source.Basis, PaintingID: paintingID, PoemID: poemID}
	if err := ingestor.pairings.Insert(ctx, record); err != nil {
		report.Failed++
		logger.ErrorContext(ctx, "pairing_insert_failed",
			slog.Int("line", row.Line()),
			slog.String("error", err.Error()),
		)
		return
	}

	report.Inserted++
	logger.DebugContext(ctx, "pairing_inserted",
		slog.String("painting", candidate.paintingName),
		slog.String("poem", candidate.poemName),
		slog.Any("score", candidate.score),
	)
	if report.Inserted%constants.IngestProgressEvery == 0 {
		logger.InfoContext(ctx, "pairing_ingest_progress", slog.Int("inserted", report.Inserted))
	}
}
