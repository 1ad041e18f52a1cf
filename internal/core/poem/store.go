// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package poem

import "context"

// Repository persists poems. Rows are only ever created in bulk by the loader.
type Repository interface {
	Insert(ctx context.Context, poem *Poem) error
	Truncate(ctx context.Context) error
}
