// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package spreadsheet

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds an in-memory .xlsx with the given rows on the first sheet.
func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadWorkbook(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Month", "Sales"},
		{"Jan", 100},
		{"Feb", 200},
	})

	r := &Reader{}
	tbl, err := r.Read(buf)
	require.NoError(t, err)
	require.True(t, tbl.HasHeaders)
	require.Equal(t, []string{"Month", "Sales"}, tbl.Headers())
	require.Len(t, tbl.DataRows(), 2)
	require.Equal(t, "100", tbl.DataRows()[0][1].String())
}

func TestReadWorkbookRowLimit(t *testing.T) {
	rows := [][]interface{}{{"Value"}}
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{i})
	}
	buf := workbook(t, rows)

	r := &Reader{MaxDataRows: 10}
	_, err := r.Read(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTooManyRows))
}

func TestReadWorkbookNotXLSX(t *testing.T) {
	r := &Reader{}
	_, err := r.Read(bytes.NewBufferString("not a zip archive"))
	require.Error(t, err)
}

func TestDetectHeaders(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want bool
	}{
		{"labels", [][]string{{"Month", "Sales"}}, true},
		{"multi-word label", [][]string{{"1", "Total Sales"}}, true},
		{"all numeric", [][]string{{"1", "2", "3"}}, false},
		{"single letters", [][]string{{"a", "b"}}, false},
		{"empty cells only", [][]string{{"", ""}}, false},
		{"no rows", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectHeaders(tt.rows))
		})
	}
}

func TestDetectHeadersNumericStrings(t *testing.T) {
	// Large numeric IDs are still digits, not labels.
	rows := [][]string{{strconv.Itoa(123456), "42"}}
	require.False(t, DetectHeaders(rows))
}
