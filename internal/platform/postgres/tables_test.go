// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ekphrasis/internal/platform/postgres"
)

/*
TestTables_RejectUnknown ensures arbitrary names never reach the SQL text.
*/
func TestTables_RejectUnknown(t *testing.T) {
	ctx := context.Background()

	for _, table := range []string{"users", "painting; DROP TABLE poem", ""} {
		assert.Error(t, postgres.Truncate(ctx, nil, table))

		_, err := postgres.Count(ctx, nil, table)
		assert.Error(t, err)
	}
}
