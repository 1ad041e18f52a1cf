// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/core/poem"
	"github.com/taibuivan/ekphrasis/internal/ingest"
	"github.com/taibuivan/ekphrasis/internal/platform/apperr"
	"github.com/taibuivan/ekphrasis/internal/platform/database/schema"
	"github.com/taibuivan/ekphrasis/internal/platform/migration"
	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

/*
TestPostgres_EndToEnd loads a tiny catalogue and one CLIP file into a real
database and reads the result back through the repositories. It runs only
when TEST_DATABASE_URL points at a disposable database.
*/
func TestPostgres_EndToEnd(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	logger := discardLogger()
	require.NoError(t, migration.RunUp(dsn, logger))

	pool, err := postgres.NewPool(ctx, dsn, postgres.LoaderOptions, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	paintings := painting.NewPostgresRepository(pool)
	poems := poem.NewPostgresRepository(pool)
	pairings := pairing.NewPostgresRepository(pool)
	catalog := ingest.NewCatalogLoader(paintings, poems, logger)

	_, err = catalog.LoadPaintings(ctx, tsvRows(t, "ID\tCategory\tArtist\tTitle\tYear\tPainting Info URL\n"+
		"mona_lisa\tRenaissance\tLeonardo da Vinci\tMona Lisa\t1503.0\thttps://example.org/mona\n"+
		"scream\tExpressionism\tEdvard Munch\tThe Scream\tc. 1893\t\n"))
	require.NoError(t, err)

	_, err = catalog.LoadPoems(ctx,
		csvRows(t, "ID\n1\n"),
		csvRows(t, "ID,Poet,Title\n42,Emily Dickinson,Hope\n"),
	)
	require.NoError(t, err)

	keys := ingest.NewPostgresKeyResolver(pool)
	_, err = keys.Resolve(ctx, ingest.KindPoem, "42_pf")
	assert.ErrorIs(t, err, ingest.ErrKeyNotFound)

	ingestor := ingest.NewPairingIngestor(keys, pairings, logger)
	report, err := ingestor.Ingest(ctx, ingest.CLIPSource(), csvRows(t,
		"Painting,Best Matching Poem Index,Similarity Score\nmona_lisa.jpg,42,0.87\nghost.jpg,42,0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, ingest.Report{Basis: pairing.BasisCLIP, Inserted: 1, NotFound: 1}, report)

	first, err := paintings.FindByOrdinal(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "mona_lisa", first.Name)
	require.NotNil(t, first.Year)
	assert.Equal(t, 1503, *first.Year)

	second, err := paintings.FindByOrdinal(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, second.Year)
	assert.Nil(t, second.InfoURL)

	_, err = paintings.FindByOrdinal(ctx, 2)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	details, err := pairings.ListByPainting(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "42_PF", details[0].Poem.Name)

	total, err := postgres.Count(ctx, pool, schema.Pairing.Table)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Reloading paintings cascades into pairing.
	require.NoError(t, paintings.Truncate(ctx))
	total, err = postgres.Count(ctx, pool, schema.Pairing.Table)
	require.NoError(t, err)
	assert.Zero(t, total)
}
