// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package recommend defines the chart recommendation contract between the
// AI analysis layer and the chart pipeline: the untrusted payload shape the
// model is asked to produce, and the normalized ChartSpec the rest of the
// system consumes.
package recommend

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/teradata-labs/sheetviz/pkg/table"
)

// ChartType identifies one of the supported visualization types.
type ChartType string

const (
	ChartTypeBar       ChartType = "bar"
	ChartTypeLine      ChartType = "line"
	ChartTypePie       ChartType = "pie"
	ChartTypeArea      ChartType = "area"
	ChartTypeScatter   ChartType = "scatter"
	ChartTypeCombo     ChartType = "combo"
	ChartTypeHistogram ChartType = "histogram"
	ChartTypeHeatmap   ChartType = "heatmap"
	ChartTypeWaterfall ChartType = "waterfall"
	ChartTypeFunnel    ChartType = "funnel"
)

// Aggregation selects the reducer applied when rows are grouped.
type Aggregation string

const (
	AggregationSum   Aggregation = "sum"
	AggregationAvg   Aggregation = "avg"
	AggregationCount Aggregation = "count"
	AggregationMax   Aggregation = "max"
	AggregationMin   Aggregation = "min"
)

// Valid reports whether the aggregation is one of the known reducers.
func (a Aggregation) Valid() bool {
	switch a {
	case AggregationSum, AggregationAvg, AggregationCount, AggregationMax, AggregationMin:
		return true
	}
	return false
}

// ChartVariant refines how multi-series charts are laid out.
type ChartVariant string

const (
	VariantStacked    ChartVariant = "stacked"
	VariantGrouped    ChartVariant = "grouped"
	VariantNormalized ChartVariant = "normalized"
)

// AnalyticalValue is the model's own estimate of how much insight a chart
// provides; it breaks priority ties when ranking recommendations.
type AnalyticalValue string

const (
	ValueHigh   AnalyticalValue = "High"
	ValueMedium AnalyticalValue = "Medium"
	ValueLow    AnalyticalValue = "Low"
)

// Weight maps the analytical value onto a sortable rank.
func (v AnalyticalValue) Weight() int {
	switch v {
	case ValueHigh:
		return 3
	case ValueLow:
		return 1
	default:
		return 2
	}
}

// ChartSpec is a normalized, fully-defaulted description of one chart.
// Every spec leaving Normalize has a usable XAxis and, for types that need a
// value axis, at least one of YAxis/DataKey populated.
type ChartSpec struct {
	Type             ChartType       `json:"type"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	XAxis            table.ColumnRef `json:"xAxis"`
	YAxis            table.ColumnRef `json:"yAxis,omitempty"`
	DataKey          table.ColumnRef `json:"dataKey,omitempty"`
	SecondaryDataKey table.ColumnRef `json:"secondaryDataKey,omitempty"`
	GroupBy          table.ColumnRef `json:"groupBy,omitempty"`
	Aggregation      Aggregation     `json:"aggregation"`
	ChartVariant     ChartVariant    `json:"chartVariant,omitempty"`
	Priority         int             `json:"priority"`
	AnalyticalValue  AnalyticalValue `json:"analyticalValue"`
}

// ChartAnalysis is the payload the model is asked to return. Every field is
// untrusted: the decoder tolerates missing, mistyped, and garbled entries so
// that one bad element never fails the whole response.
type ChartAnalysis struct {
	ShouldCreateCharts    bool                `json:"shouldCreateCharts"`
	Reasoning             string              `json:"reasoning"`
	DataInsights          string              `json:"dataInsights"`
	RecommendedCharts     []RawRecommendation `json:"recommendedCharts"`
	SuggestedCombinations []Combination       `json:"suggestedCombinations"`
}

// Combination pairs chart indices the model considers complementary.
type Combination struct {
	Charts    []LooseString `json:"charts"`
	Reasoning string        `json:"reasoning"`
}

// RawRecommendation is one loosely-typed chart recommendation as produced by
// the model. Column references and priority may arrive as strings or numbers.
type RawRecommendation struct {
	Type             string      `json:"type"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	XAxis            LooseString `json:"xAxis"`
	YAxis            LooseString `json:"yAxis"`
	DataKey          LooseString `json:"dataKey"`
	SecondaryDataKey LooseString `json:"secondaryDataKey"`
	GroupBy          LooseString `json:"groupBy"`
	Aggregation      string      `json:"aggregation"`
	ChartVariant     string      `json:"chartVariant"`
	Priority         LooseInt    `json:"priority"`
	AnalyticalValue  string      `json:"analyticalValue"`

	// invalid marks entries that were not JSON objects at all; they are
	// dropped by Normalize instead of failing the containing array.
	invalid bool
}

// UnmarshalJSON keeps a malformed array element from aborting the decode of
// its siblings.
func (r *RawRecommendation) UnmarshalJSON(data []byte) error {
	type plain RawRecommendation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*r = RawRecommendation{invalid: true}
		return nil
	}
	*r = RawRecommendation(p)
	return nil
}

// LooseString decodes a JSON string, number, or bool into its string form.
type LooseString string

// UnmarshalJSON implements tolerant scalar decoding.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}
	*s = LooseString(strings.Trim(raw, `"`))
	return nil
}

// ColumnRef converts the loose value into a column reference.
func (s LooseString) ColumnRef() table.ColumnRef {
	return table.ColumnRef(strings.TrimSpace(string(s)))
}

// LooseInt decodes a JSON number or numeric string into an int. Anything
// else decodes to zero.
type LooseInt int

// UnmarshalJSON implements tolerant integer decoding.
func (i *LooseInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "null" || raw == "" {
		*i = 0
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*i = LooseInt(n)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*i = LooseInt(int(f))
		return nil
	}
	*i = 0
	return nil
}
