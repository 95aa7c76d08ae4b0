// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import (
	"strconv"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/table"
	"go.uber.org/zap"
)

// aggregateRows collapses rows sharing a groupBy key into one synthetic row
// per group, with the y column replaced by the reduced value. Groups keep
// the x value of their first member and appear in encounter order. Rows with
// a non-numeric y are excluded from every reducer, including count.
func aggregateRows(rows [][]table.Cell, xIdx, yIdx int, headers []string, groupBy table.ColumnRef, agg recommend.Aggregation, logger *zap.Logger) [][]table.Cell {
	groupIdx := table.ResolveColumn(headers, groupBy, logger)
	if groupIdx == table.NotFound {
		logger.Warn("groupBy column not resolvable, using original rows",
			zap.String("groupBy", string(groupBy)))
		return rows
	}

	groups := make(map[string][]float64)
	firstX := make(map[string]table.Cell)
	var order []string

	for _, row := range rows {
		y, ok := table.At(row, yIdx).Float64()
		if !ok {
			continue
		}
		key := table.At(row, groupIdx).String()
		if key == "" {
			key = "Unknown"
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
			firstX[key] = table.At(row, xIdx)
		}
		groups[key] = append(groups[key], y)
	}

	logger.Debug("aggregated rows by group",
		zap.String("aggregation", string(agg)),
		zap.Int("groups", len(order)))

	width := xIdx
	for _, idx := range []int{yIdx, groupIdx} {
		if idx > width {
			width = idx
		}
	}
	width++

	out := make([][]table.Cell, 0, len(order))
	for _, key := range order {
		row := make([]table.Cell, width)
		row[xIdx] = firstX[key]
		row[yIdx] = table.Cell(strconv.FormatFloat(reduce(groups[key], agg), 'f', -1, 64))
		row[groupIdx] = table.Cell(key)
		out = append(out, row)
	}
	return out
}

// reduce applies the chosen reducer to a non-empty value slice.
func reduce(values []float64, agg recommend.Aggregation) float64 {
	switch agg {
	case recommend.AggregationAvg:
		return sum(values) / float64(len(values))
	case recommend.AggregationCount:
		return float64(len(values))
	case recommend.AggregationMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case recommend.AggregationMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	default:
		return sum(values)
	}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
