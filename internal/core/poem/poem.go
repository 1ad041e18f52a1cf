// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package poem owns the poem table: one row per poem from either of the two
// source datasets, keyed by a dataset-namespaced business name.
package poem

import "strings"

// Dataset identifies which external poem collection a row came from.
type Dataset string

const (
	// DatasetEmotion is the emotion-annotated poetry collection (name only).
	DatasetEmotion Dataset = "_EP"
	// DatasetPoetry is the poetry foundation collection (title and poet).
	DatasetPoetry Dataset = "_PF"
)

// Poem is a row of the poem table.
type Poem struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

// Name builds the business key of a poem from its dataset-local id.
//
// Example:
//
//	poem.Name("42", poem.DatasetPoetry) // "42_PF"
func Name(sourceID string, dataset Dataset) string {
	return sourceID + string(dataset)
}

// DatasetOf recovers the dataset from a business key. ok is false when the
// name carries neither suffix.
func DatasetOf(name string) (dataset Dataset, ok bool) {
	switch {
	case strings.HasSuffix(name, string(DatasetEmotion)):
		return DatasetEmotion, true
	case strings.HasSuffix(name, string(DatasetPoetry)):
		return DatasetPoetry, true
	}
	return "", false
}
