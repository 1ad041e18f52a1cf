// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rowsource_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/internal/ingest/rowsource"
)

func readAll(t *testing.T, reader *rowsource.Reader) []rowsource.Row {
	t.Helper()

	var rows []rowsource.Row
	for {
		row, err := reader.Next()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestNewReader_CSV(t *testing.T) {
	input := "Painting,Best Matching Poem Index,Similarity Score\n" +
		"mona_lisa.jpg,42,0.87\n" +
		"\"starry, night.jpg\",7,0.5\n"

	reader, err := rowsource.NewReader(strings.NewReader(input), ',')
	require.NoError(t, err)
	require.NoError(t, reader.Require("Painting", "Best Matching Poem Index"))

	rows := readAll(t, reader)
	require.Len(t, rows, 2)
	assert.Equal(t, "mona_lisa.jpg", rows[0].Get("Painting"))
	assert.Equal(t, "42", rows[0].Get("Best Matching Poem Index"))
	assert.Equal(t, 2, rows[0].Line())
	assert.Equal(t, "starry, night.jpg", rows[1].Get("Painting"))
	assert.Equal(t, "", rows[1].Get("Unknown"))
}

/*
TestNewReader_ShortRecord verifies that trailing empty cells may be omitted.
*/
func TestNewReader_ShortRecord(t *testing.T) {
	reader, err := rowsource.NewReader(strings.NewReader("ID,Poet,Title\n12\n"), ',')
	require.NoError(t, err)

	rows := readAll(t, reader)
	require.Len(t, rows, 1)
	assert.Equal(t, "12", rows[0].Get("ID"))
	assert.Equal(t, "", rows[0].Get("Title"))
}

func TestNewReader_ByteOrderMark(t *testing.T) {
	reader, err := rowsource.NewReader(strings.NewReader("\xef\xbb\xbfID\n1\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"ID"}, reader.Header())
}

func TestNewReader_Empty(t *testing.T) {
	_, err := rowsource.NewReader(strings.NewReader(""), ',')
	assert.Error(t, err)
}

func TestRequire_Missing(t *testing.T) {
	reader, err := rowsource.NewReader(strings.NewReader("Art ID,Sim Score\n"), ',')
	require.NoError(t, err)

	err = reader.Require("Art ID", "Top Poem ID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Top Poem ID")
}

func TestOpen_TSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paintings.tsv")
	content := "ID\tCategory\tArtist\tTitle\tYear\tPainting Info URL\n" +
		"mona_lisa\tRenaissance\tLeonardo da Vinci\tMona Lisa\t1503.0\thttps://example.org/mona\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	reader, err := rowsource.Open(path)
	require.NoError(t, err)
	defer reader.Close()

	rows := readAll(t, reader)
	require.Len(t, rows, 1)
	assert.Equal(t, "Leonardo da Vinci", rows[0].Get("Artist"))
	assert.Equal(t, "1503.0", rows[0].Get("Year"))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := rowsource.Open(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, '\t', rowsource.DelimiterFor("data/WikiArt.TSV"))
	assert.Equal(t, ',', rowsource.DelimiterFor("data/clip_pairings.csv"))
}
