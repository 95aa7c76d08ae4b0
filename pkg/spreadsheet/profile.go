// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package spreadsheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/teradata-labs/sheetviz/pkg/table"
)

// Column content classes reported in a profile.
const (
	ColumnEmpty   = "empty"
	ColumnNumeric = "numeric"
	ColumnDate    = "date"
	ColumnText    = "text"
)

// profileSampleRows bounds how many rows are inspected per column and how
// many are echoed into the prompt.
const (
	typeSampleRows    = 10
	contentSampleRows = 15
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// DataProfile summarizes a table's shape and content for the analysis
// prompt.
type DataProfile struct {
	FileName     string
	TotalRows    int
	TotalColumns int
	NonEmptyRows int
	HasHeaders   bool
	Headers      []string
	ColumnTypes  []string
	// Completeness is the percentage of rows carrying at least one value.
	Completeness int
	// SampleContent is a plain-text block of the leading rows.
	SampleContent string
}

// Profile inspects a table and derives the statistics the model needs to
// recommend charts.
func Profile(tbl *table.RawTable, fileName string) DataProfile {
	p := DataProfile{
		FileName:   fileName,
		HasHeaders: tbl.HasHeaders,
	}
	if len(tbl.Rows) == 0 {
		return p
	}

	p.TotalRows = len(tbl.Rows)
	p.TotalColumns = tbl.ColumnCount()
	if tbl.HasHeaders {
		p.Headers = tbl.Headers()
	}

	for _, row := range tbl.Rows {
		for _, cell := range row {
			if !cell.IsEmpty() {
				p.NonEmptyRows++
				break
			}
		}
	}
	p.Completeness = int(float64(p.NonEmptyRows) / float64(p.TotalRows) * 100)

	p.ColumnTypes = columnTypes(tbl)
	p.SampleContent = sampleContent(tbl)
	return p
}

// columnTypes classifies each column from its leading data rows.
func columnTypes(tbl *table.RawTable) []string {
	dataRows := tbl.DataRows()
	if len(dataRows) > typeSampleRows {
		dataRows = dataRows[:typeSampleRows]
	}

	types := make([]string, tbl.ColumnCount())
	for col := range types {
		var sample []table.Cell
		for _, row := range dataRows {
			if c := table.At(row, col); !c.IsEmpty() {
				sample = append(sample, c)
			}
		}
		types[col] = classify(sample)
	}
	return types
}

func classify(sample []table.Cell) string {
	if len(sample) == 0 {
		return ColumnEmpty
	}
	numeric, date := true, true
	for _, c := range sample {
		if _, ok := c.Float64(); !ok {
			numeric = false
		}
		if !looksLikeDate(c.String()) {
			date = false
		}
	}
	switch {
	case numeric:
		return ColumnNumeric
	case date:
		return ColumnDate
	default:
		return ColumnText
	}
}

func looksLikeDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// sampleContent renders the leading rows as the plain-text block embedded in
// the prompt.
func sampleContent(tbl *table.RawTable) string {
	rows := tbl.Rows
	if len(rows) > contentSampleRows {
		rows = rows[:contentSampleRows]
	}

	var sb strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		fmt.Fprintf(&sb, "Row %d: %s\n", i+1, strings.Join(cells, " | "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
