// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/core/poem"
	"github.com/taibuivan/ekphrasis/internal/ingest"
	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func csvRows(t *testing.T, content string) *rowsource.Reader {
	t.Helper()
	reader, err := rowsource.NewReader(strings.NewReader(content), ',')
	require.NoError(t, err)
	return reader
}

// fakeKeys resolves names from two in-memory tables.
type fakeKeys struct {
	paintings map[string]int64
	poems     map[string]int64
	failOn    string
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{paintings: map[string]int64{}, poems: map[string]int64{}}
}

func (keys *fakeKeys) Resolve(_ context.Context, kind ingest.Kind, key string) (int64, error) {
	if key == keys.failOn {
		return 0, fmt.Errorf("connection reset")
	}

	table := keys.poems
	if kind == ingest.KindPainting {
		table = keys.paintings
	}
	id, ok := table[key]
	if !ok {
		return 0, ingest.ErrKeyNotFound
	}
	return id, nil
}

type fakePairings struct {
	rows      []*pairing.Pairing
	truncates int
	insertErr error
}

func (store *fakePairings) Insert(_ context.Context, record *pairing.Pairing) error {
	if store.insertErr != nil {
		return store.insertErr
	}
	record.ID = int64(len(store.rows) + 1)
	store.rows = append(store.rows, record)
	return nil
}

func (store *fakePairings) Truncate(context.Context) error {
	store.truncates++
	store.rows = nil
	return nil
}

func (store *fakePairings) ListByPainting(context.Context, int64) ([]*pairing.Detail, error) {
	return nil, nil
}

type fakePaintings struct {
	rows      []*painting.Painting
	truncates int
	names     map[string]bool
}

func (store *fakePaintings) List(context.Context, int, int) ([]*painting.Painting, int, error) {
	return store.rows, len(store.rows), nil
}

func (store *fakePaintings) FindByOrdinal(context.Context, int) (*painting.Painting, error) {
	return nil, nil
}

func (store *fakePaintings) Insert(_ context.Context, record *painting.Painting) error {
	if store.names[record.Name] {
		return fmt.Errorf("duplicate key value violates unique constraint")
	}
	if store.names == nil {
		store.names = map[string]bool{}
	}
	store.names[record.Name] = true
	record.ID = int64(len(store.rows) + 1)
	store.rows = append(store.rows, record)
	return nil
}

func (store *fakePaintings) Truncate(context.Context) error {
	store.truncates++
	store.rows = nil
	store.names = nil
	return nil
}

type fakePoems struct {
	rows      []*poem.Poem
	truncates int
}

func (store *fakePoems) Insert(_ context.Context, record *poem.Poem) error {
	record.ID = int64(len(store.rows) + 1)
	store.rows = append(store.rows, record)
	return nil
}

func (store *fakePoems) Truncate(context.Context) error {
	store.truncates++
	store.rows = nil
	return nil
}
