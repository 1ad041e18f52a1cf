// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/platform/apperr"
)

var errStoreDown = errors.New("connection refused")

type fakePaintings struct {
	rows []*painting.Painting
	err  error
}

func seedPaintings(count int) *fakePaintings {
	store := &fakePaintings{}
	for i := 1; i <= count; i++ {
		store.rows = append(store.rows, &painting.Painting{ID: int64(i), Name: fmt.Sprintf("painting_%d", i)})
	}
	return store
}

func (store *fakePaintings) List(_ context.Context, limit, offset int) ([]*painting.Painting, int, error) {
	if store.err != nil {
		return nil, 0, apperr.StoreUnavailable(store.err)
	}
	if offset >= len(store.rows) {
		return []*painting.Painting{}, len(store.rows), nil
	}
	end := min(offset+limit, len(store.rows))
	return store.rows[offset:end], len(store.rows), nil
}

func (store *fakePaintings) FindByOrdinal(_ context.Context, offset int) (*painting.Painting, error) {
	if store.err != nil {
		return nil, apperr.StoreUnavailable(store.err)
	}
	if offset < 0 || offset >= len(store.rows) {
		return nil, apperr.NotFound("Painting")
	}
	copied := *store.rows[offset]
	return &copied, nil
}

func (store *fakePaintings) Insert(context.Context, *painting.Painting) error { return nil }
func (store *fakePaintings) Truncate(context.Context) error                   { return nil }

type fakePairings struct {
	byPainting map[int64][]*pairing.Detail
}

func (store *fakePairings) Insert(context.Context, *pairing.Pairing) error { return nil }
func (store *fakePairings) Truncate(context.Context) error                 { return nil }

func (store *fakePairings) ListByPainting(_ context.Context, paintingID int64) ([]*pairing.Detail, error) {
	details := []*pairing.Detail{}
	for _, detail := range store.byPainting[paintingID] {
		copied := *detail
		details = append(details, &copied)
	}
	return details, nil
}

type fakeAssets struct {
	mu     sync.Mutex
	images map[string]string
	poems  map[string]string
	calls  int
}

func (assets *fakeAssets) ImageURL(_ context.Context, name string) (string, bool) {
	assets.mu.Lock()
	defer assets.mu.Unlock()
	assets.calls++
	url, ok := assets.images[name]
	return url, ok
}

func (assets *fakeAssets) PoemText(_ context.Context, name string) (string, bool) {
	assets.mu.Lock()
	defer assets.mu.Unlock()
	assets.calls++
	text, ok := assets.poems[name]
	return text, ok
}

func newService(paintings *fakePaintings, pairings *fakePairings, assets *fakeAssets) *painting.Service {
	if pairings == nil {
		pairings = &fakePairings{}
	}
	if assets == nil {
		assets = &fakeAssets{}
	}
	return painting.NewService(paintings, pairings, assets, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}
