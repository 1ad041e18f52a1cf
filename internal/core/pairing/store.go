// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pairing

import "context"

// Repository persists pairings and reads them back per painting.
type Repository interface {
	Insert(ctx context.Context, pairing *Pairing) error
	Truncate(ctx context.Context) error

	// ListByPainting returns the painting's pairings joined with their poems,
	// ordered by pairing id.
	ListByPainting(ctx context.Context, paintingID int64) ([]*Detail, error)
}
