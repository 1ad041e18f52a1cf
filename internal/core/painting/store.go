// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting

import "context"

// Repository persists paintings.
type Repository interface {
	// List returns a page of paintings ordered by id and the total row count.
	List(ctx context.Context, limit, offset int) ([]*Painting, int, error)

	// FindByOrdinal returns the painting at 0-based position offset in id
	// order, or a NOT_FOUND error when there is none.
	FindByOrdinal(ctx context.Context, offset int) (*Painting, error)

	Insert(ctx context.Context, painting *Painting) error
	Truncate(ctx context.Context) error
}
