// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"strconv"
	"strings"

	"github.com/taibuivan/ekphrasis/internal/core/pairing"
	"github.com/taibuivan/ekphrasis/internal/core/poem"
	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
	"github.com/taibuivan/ekphrasis/pkg/convert"
)

const imageExtension = ".jpg"

// Source describes how one scoring output maps onto pairings.
type Source struct {
	Basis pairing.Basis

	PaintingColumn string
	PoemColumn     string
	ScoreColumn    string

	// StripExtension removes a trailing ".jpg" from the painting cell.
	StripExtension bool

	// Dataset is the poem collection the poem column refers to.
	Dataset poem.Dataset

	// NumericPoemID parses the poem cell as a number and truncates it. Rows
	// whose poem id is absent or not numeric are skipped, as are rows whose
	// score is exactly zero.
	NumericPoemID bool

	// Truncate clears the pairing table before the first row.
	Truncate bool
}

// EmotionSource is the emotion similarity output.
func EmotionSource() Source {
	return Source{
		Basis:          pairing.BasisEmotion,
		PaintingColumn: "Art ID",
		PoemColumn:     "Top Poem ID",
		ScoreColumn:    "Sim Score",
		Dataset:        poem.DatasetEmotion,
		Truncate:       true,
	}
}

// CLIPSource is the image/text embedding similarity output.
func CLIPSource() Source {
	return Source{
		Basis:          pairing.BasisCLIP,
		PaintingColumn: "Painting",
		PoemColumn:     "Best Matching Poem Index",
		ScoreColumn:    "Similarity Score",
		StripExtension: true,
		Dataset:        poem.DatasetPoetry,
		Truncate:       true,
	}
}

// ObjectSource is the detected-object keyword scoring output.
func ObjectSource() Source {
	return Source{
		Basis:          pairing.BasisObject,
		PaintingColumn: "Painting",
		PoemColumn:     "Best_Matching_Poem_ID",
		ScoreColumn:    "Score",
		StripExtension: true,
		Dataset:        poem.DatasetPoetry,
		NumericPoemID:  true,
	}
}

// SourceFor returns the definition of basis.
func SourceFor(basis pairing.Basis) (Source, bool) {
	switch basis {
	case pairing.BasisEmotion:
		return EmotionSource(), true
	case pairing.BasisCLIP:
		return CLIPSource(), true
	case pairing.BasisObject:
		return ObjectSource(), true
	}
	return Source{}, false
}

// Columns lists the header columns the source reads.
func (source Source) Columns() []string {
	return []string{source.PaintingColumn, source.PoemColumn, source.ScoreColumn}
}

// candidate is a row reduced to the two business keys.
type candidate struct {
	paintingName string
	poemName     string
	score        *float64
}

// parse turns row into a candidate. skip is true when the row is filtered
// out by the source rules.
func (source Source) parse(row rowsource.Row) (result candidate, skip bool) {
	paintingName := row.Get(source.PaintingColumn)
	if source.StripExtension {
		paintingName = strings.TrimSuffix(paintingName, imageExtension)
	}

	score, hasScore := convert.ToFloat64(row.Get(source.ScoreColumn))
	if hasScore {
		result.score = &score
	}

	poemID := row.Get(source.PoemColumn)
	if source.NumericPoemID {
		numeric, ok := convert.ToInt(poemID)
		if !ok || (hasScore && score == 0) {
			return candidate{}, true
		}
		poemID = strconv.Itoa(numeric)
	}

	result.paintingName = paintingName
	result.poemName = poem.Name(poemID, source.Dataset)
	return result, false
}
