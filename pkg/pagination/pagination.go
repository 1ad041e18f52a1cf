// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for page-based list endpoints.
//
// # Overview
//
// Pages are 1-indexed. Metadata reports the total row count together with the
// derived page count and navigation flags, so clients never recompute them.
package pagination

import "math"

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 2000
	// MinLimit is the smallest accepted page size.
	MinLimit = 1
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 2000
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds a validated page and limit.
type Params struct {
	Page  int
	Limit int
}

// MaxPage is the largest page whose offset fits in an int for limit.
func MaxPage(limit int) int {
	if limit <= 0 {
		return math.MaxInt
	}
	return math.MaxInt/limit + 1
}

// Offset returns the SQL OFFSET value derived from [Params.Page] and [Params.Limit].
// Pages beyond [MaxPage] saturate at math.MaxInt instead of wrapping.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	if p.Page > MaxPage(p.Limit) {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total/limit); HasNext and HasPrev are derived from it,
// so a page past the end reports HasNext=false and HasPrev=true.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
