// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package spreadsheet reads uploaded .xlsx files into the in-memory table
// representation and profiles their structure for the AI analysis prompt.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/teradata-labs/sheetviz/pkg/table"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultMaxDataRows is the data-row ceiling for analysis. Larger files are
// rejected before the pipeline runs; the bound keeps prompt size and PDF
// generation time predictable.
const DefaultMaxDataRows = 100

// ErrTooManyRows is returned when a file exceeds the data-row ceiling.
var ErrTooManyRows = errors.New("spreadsheet exceeds the maximum number of data rows")

// ErrNoSheets is returned when the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook contains no sheets")

var allDigits = regexp.MustCompile(`^\d+$`)

// Reader loads the first sheet of an .xlsx workbook. The zero value applies
// DefaultMaxDataRows and no logging.
type Reader struct {
	MaxDataRows int
	Logger      *zap.Logger
}

// ReadFile reads the workbook at path.
func (r *Reader) ReadFile(path string) (*table.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()
	return r.read(f)
}

// Read reads a workbook from a stream.
func (r *Reader) Read(rd io.Reader) (*table.RawTable, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()
	return r.read(f)
}

func (r *Reader) read(f *excelize.File) (*table.RawTable, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxRows := r.MaxDataRows
	if maxRows <= 0 {
		maxRows = DefaultMaxDataRows
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	// Single-sheet policy: only the first sheet is analyzed.
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	hasHeaders := DetectHeaders(rows)
	tbl := table.New(rows, hasHeaders)

	dataRows := len(tbl.DataRows())
	if dataRows > maxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrTooManyRows, dataRows, maxRows)
	}

	logger.Info("loaded spreadsheet",
		zap.String("sheet", sheet),
		zap.Int("rows", dataRows),
		zap.Int("columns", tbl.ColumnCount()),
		zap.Bool("hasHeaders", hasHeaders))
	return tbl, nil
}

// DetectHeaders guesses whether the first row is a header row: it is when
// some first-row cell looks like a label (multi-character or multi-word
// text that is not purely numeric).
func DetectHeaders(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	for _, cell := range rows[0] {
		c := strings.TrimSpace(cell)
		if c == "" {
			continue
		}
		if (strings.Contains(c, " ") || len(c) > 1) && !allDigits.MatchString(c) {
			return true
		}
	}
	return false
}
