// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package rowsource reads delimited dataset files as header-keyed rows.

The first record is the header; every following record is exposed as a
[Row] addressable by column name. Files ending in ".tsv" are tab separated,
everything else is comma separated. A leading UTF-8 byte order mark is
removed before the header is parsed.
*/
package rowsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one data record. Absent columns read as "".
type Row struct {
	values map[string]string
	line   int
}

// Get returns the raw cell of column.
func (row Row) Get(column string) string {
	return row.values[column]
}

// Line is the 1-based line number of the record in the file.
func (row Row) Line() int {
	return row.line
}

// NewRow builds a row from explicit values.
func NewRow(line int, values map[string]string) Row {
	return Row{values: values, line: line}
}

// Reader yields the rows of one file.
type Reader struct {
	records *csv.Reader
	header  []string
	closer  io.Closer
}

// DelimiterFor picks the field separator from the file extension.
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// Open opens path and reads its header. The caller must Close the reader.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rowsource: open %s: %w", path, err)
	}

	reader, err := NewReader(file, DelimiterFor(path))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("rowsource: %s: %w", path, err)
	}
	reader.closer = file
	return reader, nil
}

// NewReader reads the header from source.
func NewReader(source io.Reader, delimiter rune) (*Reader, error) {
	records := csv.NewReader(transform.NewReader(source, unicode.UTF8BOM.NewDecoder()))
	records.Comma = delimiter
	records.LazyQuotes = true
	records.FieldsPerRecord = -1
	records.ReuseRecord = false

	header, err := records.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file, header expected")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return &Reader{records: records, header: header}, nil
}

// Header returns the column names in file order.
func (reader *Reader) Header() []string {
	return reader.header
}

// Require fails when any of columns is missing from the header.
func (reader *Reader) Require(columns ...string) error {
	var missing []string
	for _, column := range columns {
		if !reader.has(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("rowsource: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}

// Next returns the next row or [io.EOF] after the last one.
func (reader *Reader) Next() (Row, error) {
	record, err := reader.records.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("rowsource: %w", err)
	}

	line, _ := reader.records.FieldPos(0)
	values := make(map[string]string, len(reader.header))
	for i, column := range reader.header {
		if i < len(record) {
			values[column] = record[i]
		}
	}
	return Row{values: values, line: line}, nil
}

// Close releases the underlying file, if any.
func (reader *Reader) Close() error {
	if reader.closer == nil {
		return nil
	}
	return reader.closer.Close()
}

func (reader *Reader) has(column string) bool {
	for _, name := range reader.header {
		if name == column {
			return true
		}
	}
	return false
}
