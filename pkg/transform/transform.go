// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import (
	"fmt"
	"math"
	"sort"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/table"
	"go.uber.org/zap"
)

// Transform converts raw rows into chart-ready data for one spec. It returns
// nil when the resulting series would be empty: no numeric data on the
// required axis, insufficient columns, or an unknown chart type. Callers
// treat nil as "skip this chart", not as an error.
func Transform(tbl *table.RawTable, spec recommend.ChartSpec, logger *zap.Logger) *ProcessedChartData {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tbl == nil || len(tbl.Rows) == 0 {
		return nil
	}

	headers := tbl.Headers()
	if len(headers) < 2 {
		logger.Warn("insufficient columns for chart generation",
			zap.Int("columns", len(headers)))
		return nil
	}
	dataRows := tbl.DataRows()

	xIdx := table.ResolveColumn(headers, spec.XAxis, logger)
	yIdx := table.ResolveColumn(headers, spec.YAxis, logger)
	dataIdx := table.ResolveColumn(headers, spec.DataKey, logger)
	if xIdx == table.NotFound {
		xIdx = 0
	}
	if yIdx == table.NotFound {
		yIdx = dataIdx
	}
	if dataIdx == table.NotFound {
		dataIdx = yIdx
	}

	var series []DataPoint
	var summary Summary

	switch spec.Type {
	case recommend.ChartTypePie:
		series, summary = transformPie(dataRows, xIdx, dataIdx)
	case recommend.ChartTypeBar, recommend.ChartTypeLine, recommend.ChartTypeArea:
		series, summary = transformXY(dataRows, xIdx, yIdx, headers, spec, logger)
	case recommend.ChartTypeScatter:
		series, summary = transformScatter(dataRows, xIdx, yIdx)
	case recommend.ChartTypeCombo:
		series, summary = transformCombo(dataRows, xIdx, yIdx, headers, spec, logger)
	case recommend.ChartTypeHistogram:
		series, summary = transformHistogram(dataRows, dataIdx)
	case recommend.ChartTypeHeatmap:
		series, summary = transformHeatmap(dataRows, headers)
	case recommend.ChartTypeWaterfall:
		series, summary = transformWaterfall(dataRows, xIdx, yIdx)
	case recommend.ChartTypeFunnel:
		series, summary = transformFunnel(dataRows, xIdx, yIdx)
	default:
		logger.Warn("unknown chart type", zap.String("type", string(spec.Type)))
		return nil
	}

	if len(series) == 0 {
		logger.Warn("chart produced no data points, skipping",
			zap.String("type", string(spec.Type)),
			zap.String("title", spec.Title))
		return nil
	}

	return &ProcessedChartData{
		Spec:    spec,
		Series:  series,
		Colors:  Colors(len(series)),
		Summary: summary,
	}
}

// transformPie groups name/value pairs into slices. Rows with an empty name
// or a non-positive or non-numeric value are dropped. Each slice carries its
// share of the total to one decimal place.
func transformPie(rows [][]table.Cell, nameIdx, valueIdx int) ([]DataPoint, Summary) {
	var series []DataPoint
	var categories []string
	var total float64

	for i, row := range rows {
		name := table.At(row, nameIdx).String()
		value, ok := table.At(row, valueIdx).Float64()
		if name == "" || !ok || value <= 0 {
			continue
		}
		series = append(series, PiePoint{
			ID:    fmt.Sprintf("pie-%d", i),
			Name:  name,
			Value: value,
		})
		categories = append(categories, name)
		total += value
	}

	for i, p := range series {
		slice := p.(PiePoint)
		slice.Percentage = fmt.Sprintf("%.1f", slice.Value/total*100)
		series[i] = slice
	}

	return series, Summary{
		PointCount: len(series),
		Categories: categories,
	}
}

// transformXY pairs the x column with a numeric y column for bar, line, and
// area charts. When the spec names a groupBy column, rows are pre-aggregated
// with the chosen reducer before pairing.
func transformXY(rows [][]table.Cell, xIdx, yIdx int, headers []string, spec recommend.ChartSpec, logger *zap.Logger) ([]DataPoint, Summary) {
	if !spec.GroupBy.IsZero() {
		rows = aggregateRows(rows, xIdx, yIdx, headers, spec.GroupBy, spec.Aggregation, logger)
	}

	var series []DataPoint
	var categories []string
	min, max := math.Inf(1), math.Inf(-1)

	for i, row := range rows {
		y, ok := table.At(row, yIdx).Float64()
		if !ok {
			continue
		}
		x := table.At(row, xIdx).String()
		series = append(series, XYPoint{
			ID: fmt.Sprintf("xy-%d", i),
			X:  x,
			Y:  y,
		})
		categories = append(categories, x)
		min = math.Min(min, y)
		max = math.Max(max, y)
	}

	return series, summaryWithRange(len(series), min, max, categories)
}

// transformScatter pairs two numeric columns; rows where either side is
// non-numeric are dropped. The range spans both axes combined.
func transformScatter(rows [][]table.Cell, xIdx, yIdx int) ([]DataPoint, Summary) {
	var series []DataPoint
	min, max := math.Inf(1), math.Inf(-1)

	for i, row := range rows {
		x, okX := table.At(row, xIdx).Float64()
		y, okY := table.At(row, yIdx).Float64()
		if !okX || !okY {
			continue
		}
		series = append(series, ScatterPoint{
			ID: fmt.Sprintf("scatter-%d", i),
			X:  x,
			Y:  y,
		})
		min = math.Min(min, math.Min(x, y))
		max = math.Max(max, math.Max(x, y))
	}

	return series, summaryWithRange(len(series), min, max, nil)
}

// transformCombo is transformXY with an optional second numeric series
// resolved via secondaryDataKey. The range spans both series when the
// secondary is present.
func transformCombo(rows [][]table.Cell, xIdx, yIdx int, headers []string, spec recommend.ChartSpec, logger *zap.Logger) ([]DataPoint, Summary) {
	secondaryIdx := table.NotFound
	if !spec.SecondaryDataKey.IsZero() {
		secondaryIdx = table.ResolveColumn(headers, spec.SecondaryDataKey, logger)
	}

	var series []DataPoint
	var categories []string
	min, max := math.Inf(1), math.Inf(-1)

	for i, row := range rows {
		y, ok := table.At(row, yIdx).Float64()
		if !ok {
			continue
		}
		x := table.At(row, xIdx).String()
		point := XYPoint{
			ID: fmt.Sprintf("combo-%d", i),
			X:  x,
			Y:  y,
		}
		min = math.Min(min, y)
		max = math.Max(max, y)

		if secondaryIdx != table.NotFound {
			if sec, okSec := table.At(row, secondaryIdx).Float64(); okSec {
				point.Secondary = &sec
				min = math.Min(min, sec)
				max = math.Max(max, sec)
			}
		}

		series = append(series, point)
		categories = append(categories, x)
	}

	return series, summaryWithRange(len(series), min, max, categories)
}

// transformHistogram buckets the numeric values of one column into
// min(10, ceil(sqrt(n))) equal-width bins spanning [min, max]. The last bin
// includes the true maximum.
func transformHistogram(rows [][]table.Cell, dataIdx int) ([]DataPoint, Summary) {
	var values []float64
	for _, row := range rows {
		if v, ok := table.At(row, dataIdx).Float64(); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, Summary{}
	}
	sort.Float64s(values)

	binCount := int(math.Ceil(math.Sqrt(float64(len(values)))))
	if binCount > 10 {
		binCount = 10
	}
	min := values[0]
	max := values[len(values)-1]
	binWidth := (max - min) / float64(binCount)

	series := make([]DataPoint, 0, binCount)
	categories := make([]string, 0, binCount)
	maxCount := 0

	for i := 0; i < binCount; i++ {
		binStart := min + float64(i)*binWidth
		binEnd := binStart + binWidth
		last := i == binCount-1

		count := 0
		for _, v := range values {
			if v >= binStart && (v < binEnd || (last && v <= binEnd)) {
				count++
			}
		}

		label := fmt.Sprintf("%.1f-%.1f", binStart, binEnd)
		series = append(series, HistogramBin{
			ID:    fmt.Sprintf("hist-%d", i),
			Range: label,
			Count: count,
		})
		categories = append(categories, label)
		if count > maxCount {
			maxCount = count
		}
	}

	return series, Summary{
		PointCount: len(series),
		ValueRange: &Range{Min: 0, Max: float64(maxCount)},
		Categories: categories,
	}
}

// transformHeatmap builds a pairwise Pearson correlation grid over the
// columns whose sampled leading rows are all numeric. Fewer than two such
// columns yields an empty series.
func transformHeatmap(rows [][]table.Cell, headers []string) ([]DataPoint, Summary) {
	numericCols := detectNumericColumns(rows, len(headers))
	if len(numericCols) < 2 {
		return nil, Summary{}
	}

	series := make([]DataPoint, 0, len(numericCols)*len(numericCols))
	min, max := math.Inf(1), math.Inf(-1)

	for i, ci := range numericCols {
		for j, cj := range numericCols {
			corr := pearson(columnValues(rows, ci), columnValues(rows, cj))
			series = append(series, HeatmapCell{
				ID:          fmt.Sprintf("heat-%d-%d", i, j),
				XLabel:      headers[ci],
				YLabel:      headers[cj],
				Correlation: corr,
			})
			min = math.Min(min, corr)
			max = math.Max(max, corr)
		}
	}

	return series, Summary{
		PointCount: len(series),
		ValueRange: &Range{Min: min, Max: max},
	}
}

// transformWaterfall accumulates a running total: each point records its own
// delta, the total after applying it, and the total before it.
func transformWaterfall(rows [][]table.Cell, xIdx, yIdx int) ([]DataPoint, Summary) {
	var series []DataPoint
	var categories []string
	var runningTotal float64
	min, max := math.Inf(1), math.Inf(-1)

	for i, row := range rows {
		delta, ok := table.At(row, yIdx).Float64()
		if !ok {
			continue
		}
		x := table.At(row, xIdx).String()
		start := runningTotal
		runningTotal += delta

		series = append(series, WaterfallPoint{
			ID:         fmt.Sprintf("waterfall-%d", i),
			Name:       x,
			Delta:      delta,
			Cumulative: runningTotal,
			Start:      start,
		})
		categories = append(categories, x)
		min = math.Min(min, math.Min(delta, runningTotal))
		max = math.Max(max, math.Max(delta, runningTotal))
	}

	return series, summaryWithRange(len(series), min, max, categories)
}

// transformFunnel collects label/positive-value pairs and orders stages
// largest first, the conventional funnel layout.
func transformFunnel(rows [][]table.Cell, xIdx, yIdx int) ([]DataPoint, Summary) {
	var stages []FunnelPoint
	var categories []string
	min, max := math.Inf(1), math.Inf(-1)

	for i, row := range rows {
		value, ok := table.At(row, yIdx).Float64()
		if !ok || value <= 0 {
			continue
		}
		x := table.At(row, xIdx).String()
		stages = append(stages, FunnelPoint{
			ID:    fmt.Sprintf("funnel-%d", i),
			Name:  x,
			Value: value,
		})
		categories = append(categories, x)
		min = math.Min(min, value)
		max = math.Max(max, value)
	}

	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Value > stages[j].Value
	})

	series := make([]DataPoint, len(stages))
	for i, s := range stages {
		series[i] = s
	}
	return series, summaryWithRange(len(series), min, max, categories)
}

// detectNumericColumns returns the indices of columns whose first sampled
// data rows (up to 10) parse as numbers. An empty or short cell in the
// sample disqualifies the column.
func detectNumericColumns(rows [][]table.Cell, columnCount int) []int {
	sample := rows
	if len(sample) > 10 {
		sample = sample[:10]
	}
	if len(sample) == 0 {
		return nil
	}

	var numeric []int
	for col := 0; col < columnCount; col++ {
		allNumeric := true
		for _, row := range sample {
			if _, ok := table.At(row, col).Float64(); !ok {
				allNumeric = false
				break
			}
		}
		if allNumeric {
			numeric = append(numeric, col)
		}
	}
	return numeric
}

// columnValues extracts the numeric values of one column, skipping
// non-numeric cells.
func columnValues(rows [][]table.Cell, col int) []float64 {
	var values []float64
	for _, row := range rows {
		if v, ok := table.At(row, col).Float64(); ok {
			values = append(values, v)
		}
	}
	return values
}

func summaryWithRange(count int, min, max float64, categories []string) Summary {
	s := Summary{
		PointCount: count,
		Categories: categories,
	}
	if count > 0 {
		s.ValueRange = &Range{Min: min, Max: max}
	}
	return s
}
