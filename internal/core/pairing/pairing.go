// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pairing owns the pairing table, the link between one painting and
// one poem produced by a scoring source.
package pairing

// Basis names the scoring method that produced a pairing.
type Basis string

const (
	BasisEmotion Basis = "Emotion"
	BasisCLIP    Basis = "CLIP"
	BasisObject  Basis = "Object"
)

// Valid reports whether basis is one of the known scoring methods.
func (basis Basis) Valid() bool {
	switch basis {
	case BasisEmotion, BasisCLIP, BasisObject:
		return true
	}
	return false
}

// Pairing is a row of the pairing table. Both ids must reference existing rows.
type Pairing struct {
	ID         int64 `json:"id"`
	Basis      Basis `json:"basis"`
	PaintingID int64 `json:"painting_id"`
	PoemID     int64 `json:"poem_id"`
}

// Detail is a pairing joined with its poem, as shown on a painting page.
type Detail struct {
	ID    int64      `json:"id"`
	Basis Basis      `json:"basis"`
	Poem  PoemDetail `json:"poem"`
}

// PoemDetail is the poem side of a [Detail]. Content is filled in from the
// object store and stays absent when the text cannot be fetched.
type PoemDetail struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Content *string `json:"content,omitempty"`
}
