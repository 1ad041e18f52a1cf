// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package painting serves the painting catalogue: the paginated index and the
per-painting detail page with its paired poems.

Rows are addressed publicly by ordinal position (1-based, id ascending), not
by surrogate id, so the detail route stays stable across full reloads.
*/
package painting

import (
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/pkg/pagination"
)

// Painting is a row of the painting table. Dataset gaps are nil.
type Painting struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Year     *int    `json:"year"`
	Category *string `json:"category"`
	InfoURL  *string `json:"info_url"`

	Pairings []*pairing.Detail `json:"pairings,omitempty"`
}

// Summary is a painting as listed on the index page.
type Summary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Year     *int    `json:"year"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

// Page is one page of the index.
type Page struct {
	Items      []*Summary      `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

// Detail is the response of the detail page.
type Detail struct {
	Painting *Painting `json:"painting"`
	ImageURL *string   `json:"image_url"`
}

func (painting *Painting) summary() *Summary {
	return &Summary{
		ID:       painting.ID,
		Name:     painting.Name,
		Title:    painting.Title,
		Author:   painting.Author,
		Year:     painting.Year,
		Category: painting.Category,
	}
}
