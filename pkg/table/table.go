// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package table holds the in-memory representation of an uploaded
// spreadsheet and column resolution against its header row.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single scalar spreadsheet value held in its string form.
// Numeric interpretation is on demand; an empty cell is never numeric.
type Cell string

// String returns the cell value with surrounding whitespace removed.
func (c Cell) String() string {
	return strings.TrimSpace(string(c))
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}

// Float64 coerces the cell to a floating-point number. The second return
// is false when the cell is empty or not numeric; empty cells are excluded
// from numeric series, never treated as zero.
func (c Cell) Float64() (float64, bool) {
	s := c.String()
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// RawTable is the ordered row/column view of one spreadsheet, read once per
// uploaded file and replaced wholesale when a new file is loaded.
type RawTable struct {
	Rows       [][]Cell
	HasHeaders bool
}

// New builds a RawTable from raw string rows.
func New(rows [][]string, hasHeaders bool) *RawTable {
	t := &RawTable{HasHeaders: hasHeaders}
	t.Rows = make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, len(row))
		for i, v := range row {
			cells[i] = Cell(v)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Headers returns the column names: the first row when HasHeaders is set,
// otherwise synthetic Column1..N names sized to the first row.
func (t *RawTable) Headers() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	headers := make([]string, len(t.Rows[0]))
	for i, c := range t.Rows[0] {
		if t.HasHeaders {
			headers[i] = c.String()
		} else {
			headers[i] = fmt.Sprintf("Column%d", i+1)
		}
	}
	return headers
}

// DataRows returns the rows carrying data, excluding the header row when
// present. Rows may be shorter than the header row; consumers index with At.
func (t *RawTable) DataRows() [][]Cell {
	if len(t.Rows) == 0 {
		return nil
	}
	if t.HasHeaders {
		return t.Rows[1:]
	}
	return t.Rows
}

// ColumnCount returns the width of the header row.
func (t *RawTable) ColumnCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// At returns the cell at the given column of a row, tolerating short rows.
func At(row []Cell, col int) Cell {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
