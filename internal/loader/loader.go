// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package loader runs the dataset load operations behind the loader CLI.

Each operation opens its dataset files from the configured data directory,
hands them to the ingest package and returns the resulting report. The full
load runs the catalogue first, because clearing painting or poem cascades
into pairing, then clears pairing once and appends every scoring source.
*/
package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/ingest"
	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
	"github.com/taibuivan/ekphrasis/internal/platform/config"
	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
)

// Tables clears and counts whole tables; [*postgres.Tables] implements it.
type Tables interface {
	Truncate(ctx context.Context, table string) error
	Count(ctx context.Context, table string) (int, error)
}

// Summary is the outcome of a full load.
type Summary struct {
	Paintings ingest.CatalogReport `json:"paintings"`
	Poems     ingest.CatalogReport `json:"poems"`
	Pairings  []ingest.Report      `json:"pairings"`
}

// App executes loader operations.
type App struct {
	cfg      *config.LoaderConfig
	catalog  *ingest.CatalogLoader
	pairings *ingest.PairingIngestor
	tables   Tables
	logger   *slog.Logger
}

func New(cfg *config.LoaderConfig, catalog *ingest.CatalogLoader, pairings *ingest.PairingIngestor, tables Tables, logger *slog.Logger) *App {
	return &App{cfg: cfg, catalog: catalog, pairings: pairings, tables: tables, logger: logger}
}

// Paintings reloads the painting table.
func (app *App) Paintings(ctx context.Context) (ingest.CatalogReport, error) {
	rows, err := rowsource.Open(app.cfg.Path(app.cfg.PaintingFile))
	if err != nil {
		return ingest.CatalogReport{Table: schema.Painting.Table}, err
	}
	defer rows.Close()

	return app.catalog.LoadPaintings(ctx, rows)
}

// Poems reloads the poem table from both poem collections.
func (app *App) Poems(ctx context.Context) (ingest.CatalogReport, error) {
	emotion, err := rowsource.Open(app.cfg.Path(app.cfg.EmotionPoemFile))
	if err != nil {
		return ingest.CatalogReport{Table: schema.Poem.Table}, err
	}
	defer emotion.Close()

	poetry, err := rowsource.Open(app.cfg.Path(app.cfg.PoetryFile))
	if err != nil {
		return ingest.CatalogReport{Table: schema.Poem.Table}, err
	}
	defer poetry.Close()

	return app.catalog.LoadPoems(ctx, emotion, poetry)
}

// Source returns the definition of basis with its configured truncate flag.
func (app *App) Source(basis pairing.Basis) (ingest.Source, error) {
	source, ok := ingest.SourceFor(basis)
	if !ok {
		return ingest.Source{}, fmt.Errorf("loader: unknown pairing basis %q", basis)
	}

	switch basis {
	case pairing.BasisEmotion:
		source.Truncate = app.cfg.TruncateEmotion
	case pairing.BasisCLIP:
		source.Truncate = app.cfg.TruncateCLIP
	case pairing.BasisObject:
		source.Truncate = app.cfg.TruncateObject
	}
	return source, nil
}

// Pairings runs one scoring source.
func (app *App) Pairings(ctx context.Context, source ingest.Source) (ingest.Report, error) {
	rows, err := rowsource.Open(app.cfg.Path(app.pairFile(source.Basis)))
	if err != nil {
		return ingest.Report{Basis: source.Basis}, err
	}
	defer rows.Close()

	return app.pairings.Ingest(ctx, source, rows)
}

// All reloads everything: paintings, poems, then the three scoring sources
// over a single cleared pairing table.
func (app *App) All(ctx context.Context) (Summary, error) {
	var summary Summary
	var err error

	if summary.Paintings, err = app.Paintings(ctx); err != nil {
		return summary, err
	}
	if summary.Poems, err = app.Poems(ctx); err != nil {
		return summary, err
	}

	if err := app.tables.Truncate(ctx, schema.Pairing.Table); err != nil {
		return summary, err
	}

	for _, basis := range []pairing.Basis{pairing.BasisEmotion, pairing.BasisCLIP, pairing.BasisObject} {
		source, err := app.Source(basis)
		if err != nil {
			return summary, err
		}
		source.Truncate = false

		report, err := app.Pairings(ctx, source)
		summary.Pairings = append(summary.Pairings, report)
		if err != nil {
			return summary, err
		}
	}

	app.logger.InfoContext(ctx, "load_all_finished",
		slog.Any("paintings", summary.Paintings),
		slog.Any("poems", summary.Poems),
		slog.Int("sources", len(summary.Pairings)),
	)
	return summary, nil
}

// Count returns the row count of table.
func (app *App) Count(ctx context.Context, table string) (int, error) {
	return app.tables.Count(ctx, table)
}

// Clear truncates table, or every table when table is empty. It returns the
// tables it cleared.
func (app *App) Clear(ctx context.Context, table string) ([]string, error) {
	targets := schema.Tables()
	if table != "" {
		targets = []string{table}
	}

	cleared := make([]string, 0, len(targets))
	for _, target := range targets {
		if err := app.tables.Truncate(ctx, target); err != nil {
			return cleared, err
		}
		cleared = append(cleared, target)
		app.logger.InfoContext(ctx, "table_cleared", slog.String("table", target))
	}
	return cleared, nil
}

func (app *App) pairFile(basis pairing.Basis) string {
	switch basis {
	case pairing.BasisCLIP:
		return app.cfg.CLIPPairFile
	case pairing.BasisObject:
		return app.cfg.ObjectPairFile
	default:
		return app.cfg.EmotionPairFile
	}
}
