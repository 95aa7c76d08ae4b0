// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package transform converts raw table rows plus a normalized ChartSpec
// into plottable per-chart-type series with derived statistics.
package transform

import "github.com/teradata-labs/sheetviz/pkg/recommend"

// DataPoint is the common envelope shared by every per-chart-type point
// variant: a stable synthetic identifier for list rendering, and an optional
// display label. Renderers switch on the concrete type.
type DataPoint interface {
	// PointID returns a stable synthetic identifier, e.g. "pie-0".
	PointID() string
	// Label returns the display name, empty where not applicable.
	Label() string
}

// PiePoint is one slice of a pie chart.
type PiePoint struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage string  `json:"percentage"` // share of the total, one decimal place
}

func (p PiePoint) PointID() string { return p.ID }
func (p PiePoint) Label() string   { return p.Name }

// XYPoint is one category/value pair for bar, line, area, and combo charts.
// Secondary carries the optional second series of a combo chart.
type XYPoint struct {
	ID        string   `json:"id"`
	X         string   `json:"x"`
	Y         float64  `json:"y"`
	Secondary *float64 `json:"secondary,omitempty"`
}

func (p XYPoint) PointID() string { return p.ID }
func (p XYPoint) Label() string   { return p.X }

// ScatterPoint is one numeric x/y pair.
type ScatterPoint struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func (p ScatterPoint) PointID() string { return p.ID }
func (p ScatterPoint) Label() string   { return "" }

// HistogramBin is one equal-width bucket with its occupancy count.
type HistogramBin struct {
	ID    string `json:"id"`
	Range string `json:"range"` // "<start>-<end>", one decimal place
	Count int    `json:"count"`
}

func (p HistogramBin) PointID() string { return p.ID }
func (p HistogramBin) Label() string   { return p.Range }

// HeatmapCell is one cell of the pairwise correlation grid.
type HeatmapCell struct {
	ID          string  `json:"id"`
	XLabel      string  `json:"xLabel"`
	YLabel      string  `json:"yLabel"`
	Correlation float64 `json:"correlation"`
}

func (p HeatmapCell) PointID() string { return p.ID }
func (p HeatmapCell) Label() string   { return p.XLabel + " vs " + p.YLabel }

// WaterfallPoint records a delta together with the running totals before and
// after it, enabling a bridge rendering. Start of point i equals Cumulative
// of point i-1; the first point starts at zero.
type WaterfallPoint struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Delta      float64 `json:"delta"`
	Cumulative float64 `json:"cumulative"`
	Start      float64 `json:"start"`
}

func (p WaterfallPoint) PointID() string { return p.ID }
func (p WaterfallPoint) Label() string   { return p.Name }

// FunnelPoint is one funnel stage; stages are ordered largest first.
type FunnelPoint struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (p FunnelPoint) PointID() string { return p.ID }
func (p FunnelPoint) Label() string   { return p.Name }

// Range is an inclusive numeric span.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Summary carries derived statistics about a transformed series.
type Summary struct {
	PointCount int      `json:"pointCount"`
	ValueRange *Range   `json:"valueRange,omitempty"` // nil where no numeric range applies (pie)
	Categories []string `json:"categories,omitempty"` // ordered labels encountered; nil for scatter/heatmap
}

// ProcessedChartData is the transformer output: the spec it was built from,
// the plottable series, one color token per point, and summary statistics.
// It is derived synchronously and recomputed whenever the table or the spec
// changes.
type ProcessedChartData struct {
	Spec    recommend.ChartSpec `json:"spec"`
	Series  []DataPoint         `json:"series"`
	Colors  []string            `json:"colors"`
	Summary Summary             `json:"summary"`
}
