// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/platform/apperr"
	"github.com/taibuivan/ekphrasis/internal/platform/validate"
	"github.com/taibuivan/ekphrasis/pkg/pagination"
	"github.com/taibuivan/ekphrasis/pkg/pointer"
)

// assetConcurrency bounds object store round trips issued for one response.
const assetConcurrency = 8

// AssetResolver supplies the object store backed fields of a response.
// Both lookups degrade to ok=false instead of failing the request.
type AssetResolver interface {
	ImageURL(ctx context.Context, paintingName string) (string, bool)
	PoemText(ctx context.Context, poemName string) (string, bool)
}

// Service implements the index and detail reads.
type Service struct {
	paintings Repository
	pairings  pairing.Repository
	assets    AssetResolver
	logger    *slog.Logger
}

// NewService wires the painting reader.
func NewService(paintings Repository, pairings pairing.Repository, assets AssetResolver, logger *slog.Logger) *Service {
	return &Service{
		paintings: paintings,
		pairings:  pairings,
		assets:    assets,
		logger:    logger,
	}
}

// List returns one page of the index with an image URL per item.
func (service *Service) List(ctx context.Context, params pagination.Params) (*Page, error) {
	validator := &validate.Validator{}
	validator.
		Min("page", params.Page, pagination.DefaultPage).
		Range("limit", params.Limit, pagination.MinLimit, pagination.MaxLimit)
	if !validator.HasErrors() {
		validator.Custom("page", params.Page > pagination.MaxPage(params.Limit), "Page is out of range")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	paintings, total, err := service.paintings.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, err
	}

	items := make([]*Summary, len(paintings))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(assetConcurrency)

	for i, painting := range paintings {
		items[i] = painting.summary()
		group.Go(func() error {
			if url, ok := service.assets.ImageURL(groupCtx, painting.Name); ok {
				items[i].ImageURL = pointer.To(url)
			}
			return nil
		})
	}
	_ = group.Wait()

	return &Page{
		Items:      items,
		Pagination: pagination.NewMeta(params.Page, params.Limit, total),
	}, nil
}

// Detail returns the painting at 1-based rowNumber with its pairings, poem
// texts and image URL.
func (service *Service) Detail(ctx context.Context, rowNumber int) (*Detail, error) {
	if rowNumber < 1 {
		return nil, apperr.NotFound(resourceName)
	}

	painting, err := service.paintings.FindByOrdinal(ctx, rowNumber-1)
	if err != nil {
		return nil, err
	}

	pairings, err := service.pairings.ListByPainting(ctx, painting.ID)
	if err != nil {
		return nil, err
	}
	painting.Pairings = pairings

	detail := &Detail{Painting: painting}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(assetConcurrency)

	group.Go(func() error {
		if url, ok := service.assets.ImageURL(groupCtx, painting.Name); ok {
			detail.ImageURL = pointer.To(url)
		}
		return nil
	})

	for _, pair := range pairings {
		group.Go(func() error {
			if content, ok := service.assets.PoemText(groupCtx, pair.Poem.Name); ok {
				pair.Poem.Content = pointer.To(content)
			}
			return nil
		})
	}
	_ = group.Wait()

	service.logger.DebugContext(ctx, "painting_detail_served",
		slog.Int("row_number", rowNumber),
		slog.Int64("painting_id", painting.ID),
		slog.Int("pairings", len(pairings)),
	)
	return detail, nil
}
