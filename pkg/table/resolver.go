// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package table

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// NotFound is returned by ResolveColumn only when the reference itself is
// missing or when the table has no headers to resolve against.
const NotFound = -1

// ColumnRef identifies a table column either by 0-based index ("0", "1", …)
// or by header name. References come from free-form model output and may be
// absent, out of range, or misspelled.
type ColumnRef string

// Index builds a ColumnRef from a numeric column index.
func Index(i int) ColumnRef {
	return ColumnRef(strconv.Itoa(i))
}

// IsZero reports whether the reference is absent.
func (r ColumnRef) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

// ResolveColumn maps a loose column reference onto the header list.
//
// Resolution order: numeric index (out-of-range values are clamped to the
// nearest valid bound rather than rejected, since the upstream model may
// miscount columns), case-insensitive exact name match, case-insensitive
// substring match in either direction, and finally column 0. The fallback to
// column 0 keeps a misnamed reference from sinking the whole chart; a wrong
// but valid column is preferred over no chart at all.
func ResolveColumn(headers []string, ref ColumnRef, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	refStr := strings.TrimSpace(string(ref))
	if refStr == "" {
		logger.Warn("column reference is empty")
		return NotFound
	}
	if len(headers) == 0 {
		logger.Warn("header list is empty")
		return NotFound
	}

	if idx, ok := parseIndex(refStr); ok {
		if idx >= 0 && idx < len(headers) {
			return idx
		}
		clamped := idx
		if clamped < 0 {
			clamped = 0
		}
		if clamped > len(headers)-1 {
			clamped = len(headers) - 1
		}
		logger.Warn("column index out of bounds, clamping",
			zap.Int("index", idx),
			zap.Int("columns", len(headers)),
			zap.Int("clamped", clamped))
		return clamped
	}

	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), refStr) {
			return i
		}
	}

	refLower := strings.ToLower(refStr)
	for i, h := range headers {
		hLower := strings.ToLower(strings.TrimSpace(h))
		if hLower == "" {
			continue
		}
		if strings.Contains(hLower, refLower) || strings.Contains(refLower, hLower) {
			logger.Info("using partial match for column",
				zap.String("ref", refStr),
				zap.String("header", headers[i]))
			return i
		}
	}

	logger.Warn("column not found in headers, falling back to column 0",
		zap.String("ref", refStr),
		zap.Strings("headers", headers))
	return 0
}

// parseIndex interprets a reference as a numeric column index. Fractional
// values are truncated toward zero.
func parseIndex(s string) (int, bool) {
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
