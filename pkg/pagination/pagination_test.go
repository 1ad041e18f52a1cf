// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ekphrasis/pkg/pagination"
)

/*
TestNewMeta checks page arithmetic and the navigation flags at the edges.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first_of_three", 1, 2000, 5000, 3, true, false},
		{"middle", 2, 2000, 5000, 3, true, true},
		{"last", 3, 2000, 5000, 3, false, true},
		{"past_the_end", 4, 2000, 5000, 3, false, true},
		{"exact_multiple", 2, 10, 20, 2, false, true},
		{"single_page", 1, 2000, 7, 1, false, false},
		{"empty", 1, 2000, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNext)
			assert.Equal(t, tt.hasPrev, meta.HasPrev)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

/*
TestMeta_Invariants sweeps a grid of inputs and checks the flag definitions hold everywhere.
*/
func TestMeta_Invariants(t *testing.T) {
	for _, total := range []int{0, 1, 19, 20, 21, 4999, 5000} {
		for _, limit := range []int{1, 7, 20, 2000} {
			totalPages := pagination.NewMeta(1, limit, total).TotalPages

			for page := 1; page <= totalPages; page++ {
				meta := pagination.NewMeta(page, limit, total)

				assert.Equal(t, (total+limit-1)/limit, meta.TotalPages)
				assert.Equal(t, page < meta.TotalPages, meta.HasNext)
				assert.Equal(t, page > 1, meta.HasPrev)

				offset := pagination.Params{Page: page, Limit: limit}.Offset()
				returned := min(limit, total-offset)
				assert.Positive(t, returned)
				assert.LessOrEqual(t, offset+returned, total)
			}
		}
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 2000}.Offset())
	assert.Equal(t, 2000, pagination.Params{Page: 2, Limit: 2000}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

func TestParams_Offset_DoesNotWrap(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"wraps_to_zero", pagination.Params{Page: 1<<62 + 1, Limit: 4}, math.MaxInt},
		{"wraps_negative", pagination.Params{Page: 1 << 62, Limit: 2000}, math.MaxInt},
		{"max_page", pagination.Params{Page: pagination.MaxPage(2000), Limit: 2000}, (pagination.MaxPage(2000) - 1) * 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.params.Offset()
			assert.Equal(t, tt.want, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
