// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package recommend

import (
	"sort"

	"github.com/teradata-labs/sheetviz/pkg/table"
	"go.uber.org/zap"
)

// MaxCharts bounds how many charts one report may carry. Keeps export time
// and PDF size within a user-tolerable range.
const MaxCharts = 8

// Normalize filters and repairs the model's raw chart recommendations into
// fully-defaulted ChartSpecs. It is total: invalid entries are dropped with
// a diagnostic, never surfaced as an error, and an empty result is a valid
// "no charts" outcome. Tables with fewer than two columns yield no specs
// because no chart over them is meaningful.
//
// Surviving specs are ranked by priority (ascending), ties broken by
// analytical value (High before Medium before Low), and truncated to
// MaxCharts.
func Normalize(raw []RawRecommendation, headers []string, logger *zap.Logger) []ChartSpec {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(headers) < 2 {
		logger.Warn("insufficient columns for chart generation, need at least 2",
			zap.Int("columns", len(headers)))
		return nil
	}

	specs := make([]ChartSpec, 0, len(raw))
	for i, rec := range raw {
		if rec.invalid {
			logger.Warn("dropping recommendation that is not an object", zap.Int("index", i))
			continue
		}
		if rec.Type == "" {
			logger.Warn("dropping recommendation missing chart type", zap.Int("index", i))
			continue
		}
		specs = append(specs, repair(rec, headers))
	}

	sort.SliceStable(specs, func(i, j int) bool {
		if specs[i].Priority != specs[j].Priority {
			return specs[i].Priority < specs[j].Priority
		}
		return specs[i].AnalyticalValue.Weight() > specs[j].AnalyticalValue.Weight()
	})

	if len(specs) > MaxCharts {
		logger.Info("truncating chart recommendations",
			zap.Int("received", len(specs)),
			zap.Int("kept", MaxCharts))
		specs = specs[:MaxCharts]
	}
	return specs
}

// repair fills missing fields with defaults so downstream transformers can
// assume a complete spec.
func repair(rec RawRecommendation, headers []string) ChartSpec {
	secondCol := table.ColumnRef(headers[1])

	spec := ChartSpec{
		Type:             ChartType(rec.Type),
		Title:            rec.Title,
		Description:      rec.Description,
		XAxis:            rec.XAxis.ColumnRef(),
		YAxis:            rec.YAxis.ColumnRef(),
		DataKey:          rec.DataKey.ColumnRef(),
		SecondaryDataKey: rec.SecondaryDataKey.ColumnRef(),
		GroupBy:          rec.GroupBy.ColumnRef(),
		Aggregation:      Aggregation(rec.Aggregation),
		ChartVariant:     ChartVariant(rec.ChartVariant),
		Priority:         int(rec.Priority),
		AnalyticalValue:  AnalyticalValue(rec.AnalyticalValue),
	}

	if spec.Title == "" {
		spec.Title = "Untitled Chart"
	}
	if spec.XAxis.IsZero() {
		spec.XAxis = table.ColumnRef(headers[0])
	}
	if !spec.Aggregation.Valid() {
		spec.Aggregation = AggregationSum
	}
	if spec.Priority <= 0 {
		spec.Priority = 1
	}
	switch spec.AnalyticalValue {
	case ValueHigh, ValueMedium, ValueLow:
	default:
		spec.AnalyticalValue = ValueMedium
	}

	switch spec.Type {
	case ChartTypePie, ChartTypeHistogram:
		// These plot a single value column; repair a missing dataKey from
		// the y-axis before defaulting to the second column.
		if spec.DataKey.IsZero() {
			if !spec.YAxis.IsZero() {
				spec.DataKey = spec.YAxis
			} else {
				spec.DataKey = secondCol
			}
		}
	default:
		if spec.YAxis.IsZero() && spec.DataKey.IsZero() {
			spec.YAxis = secondCol
			spec.DataKey = secondCol
		}
	}

	return spec
}
