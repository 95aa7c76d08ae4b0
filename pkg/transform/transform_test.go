// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transform

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/table"
)

func salesTable() *table.RawTable {
	return table.New([][]string{
		{"Month", "Sales"},
		{"Jan", "100"},
		{"Feb", "200"},
		{"Mar", "300"},
	}, true)
}

func barSpec(typ recommend.ChartType) recommend.ChartSpec {
	return recommend.ChartSpec{
		Type:        typ,
		Title:       "Sales by Month",
		XAxis:       "Month",
		YAxis:       "Sales",
		DataKey:     "Sales",
		Aggregation: recommend.AggregationSum,
		Priority:    1,
	}
}

func TestTransformBar(t *testing.T) {
	pc := Transform(salesTable(), barSpec(recommend.ChartTypeBar), nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if pc.Summary.PointCount != 3 {
		t.Errorf("PointCount = %d, want 3", pc.Summary.PointCount)
	}
	if pc.Summary.ValueRange == nil || pc.Summary.ValueRange.Min != 100 || pc.Summary.ValueRange.Max != 300 {
		t.Errorf("ValueRange = %+v, want {100 300}", pc.Summary.ValueRange)
	}
	if !reflect.DeepEqual(pc.Summary.Categories, []string{"Jan", "Feb", "Mar"}) {
		t.Errorf("Categories = %v", pc.Summary.Categories)
	}
	if len(pc.Colors) != 3 {
		t.Errorf("Colors len = %d, want 3", len(pc.Colors))
	}

	first := pc.Series[0].(XYPoint)
	if first.X != "Jan" || first.Y != 100 {
		t.Errorf("first point = %+v", first)
	}
}

func TestTransformBarSkipsNonNumericRows(t *testing.T) {
	tbl := table.New([][]string{
		{"Month", "Sales"},
		{"Jan", "100"},
		{"Feb", "n/a"},
		{"Mar", ""},
		{"Apr", "400"},
	}, true)
	pc := Transform(tbl, barSpec(recommend.ChartTypeBar), nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if pc.Summary.PointCount != 2 {
		t.Errorf("PointCount = %d, want 2", pc.Summary.PointCount)
	}
	if !reflect.DeepEqual(pc.Summary.Categories, []string{"Jan", "Apr"}) {
		t.Errorf("Categories = %v", pc.Summary.Categories)
	}
}

func TestTransformPiePercentages(t *testing.T) {
	spec := recommend.ChartSpec{
		Type:    recommend.ChartTypePie,
		Title:   "Sales Share",
		XAxis:   "Month",
		DataKey: "Sales",
	}
	pc := Transform(salesTable(), spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}

	wantPct := []string{"16.7", "33.3", "50.0"}
	total := 0.0
	for i, p := range pc.Series {
		slice := p.(PiePoint)
		if slice.Percentage != wantPct[i] {
			t.Errorf("slice %d percentage = %q, want %q", i, slice.Percentage, wantPct[i])
		}
		total += slice.Value
	}
	if total != 600 {
		t.Errorf("total = %v, want 600", total)
	}
	if pc.Summary.ValueRange != nil {
		t.Errorf("pie ValueRange = %+v, want nil", pc.Summary.ValueRange)
	}
}

func TestTransformPieDropsBadRows(t *testing.T) {
	tbl := table.New([][]string{
		{"Category", "Amount"},
		{"A", "50"},
		{"", "30"},
		{"B", "-10"},
		{"C", "0"},
		{"D", "abc"},
		{"E", "50"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypePie, XAxis: "Category", DataKey: "Amount"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if pc.Summary.PointCount != 2 {
		t.Errorf("PointCount = %d, want 2", pc.Summary.PointCount)
	}
	for _, p := range pc.Series {
		if p.(PiePoint).Percentage != "50.0" {
			t.Errorf("percentage = %q, want 50.0", p.(PiePoint).Percentage)
		}
	}
}

func TestTransformScatter(t *testing.T) {
	tbl := table.New([][]string{
		{"Height", "Weight"},
		{"150", "50"},
		{"160", "60"},
		{"bad", "70"},
		{"180", "80"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeScatter, XAxis: "Height", YAxis: "Weight"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if pc.Summary.PointCount != 3 {
		t.Errorf("PointCount = %d, want 3", pc.Summary.PointCount)
	}
	if pc.Summary.Categories != nil {
		t.Errorf("scatter Categories = %v, want nil", pc.Summary.Categories)
	}
	// Range spans both axes.
	if pc.Summary.ValueRange.Min != 50 || pc.Summary.ValueRange.Max != 180 {
		t.Errorf("ValueRange = %+v, want {50 180}", pc.Summary.ValueRange)
	}
}

func TestTransformCombo(t *testing.T) {
	tbl := table.New([][]string{
		{"Month", "Revenue", "Units"},
		{"Jan", "1000", "10"},
		{"Feb", "2000", "20"},
	}, true)
	spec := recommend.ChartSpec{
		Type:             recommend.ChartTypeCombo,
		XAxis:            "Month",
		YAxis:            "Revenue",
		SecondaryDataKey: "Units",
	}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	first := pc.Series[0].(XYPoint)
	if first.Secondary == nil || *first.Secondary != 10 {
		t.Errorf("first.Secondary = %v, want 10", first.Secondary)
	}
	// Range includes the secondary series.
	if pc.Summary.ValueRange.Min != 10 || pc.Summary.ValueRange.Max != 2000 {
		t.Errorf("ValueRange = %+v, want {10 2000}", pc.Summary.ValueRange)
	}
}

func TestTransformHistogram(t *testing.T) {
	rows := [][]string{{"Value"}}
	// 16 values 1..16: ceil(sqrt(16)) = 4 bins of width 3.75.
	for i := 1; i <= 16; i++ {
		rows = append(rows, []string{strconv.Itoa(i)})
	}
	tbl := table.New(rows, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeHistogram, XAxis: "Value", DataKey: "Value"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if len(pc.Series) != 4 {
		t.Fatalf("bin count = %d, want 4", len(pc.Series))
	}

	total := 0
	for _, p := range pc.Series {
		total += p.(HistogramBin).Count
	}
	// Every value lands in exactly one bin, including the maximum.
	if total != 16 {
		t.Errorf("binned values = %d, want 16", total)
	}
	last := pc.Series[3].(HistogramBin)
	if last.Count == 0 {
		t.Error("last bin should include the maximum value")
	}
}

func TestTransformHistogramBinCap(t *testing.T) {
	rows := [][]string{{"Value"}}
	for i := 0; i < 200; i++ {
		rows = append(rows, []string{strconv.Itoa(i)})
	}
	tbl := table.New(rows, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeHistogram, XAxis: "Value", DataKey: "Value"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	if len(pc.Series) != 10 {
		t.Errorf("bin count = %d, want capped at 10", len(pc.Series))
	}
}

func TestTransformHeatmap(t *testing.T) {
	tbl := table.New([][]string{
		{"Name", "A", "B"},
		{"r1", "1", "2"},
		{"r2", "2", "4"},
		{"r3", "3", "6"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeHeatmap, XAxis: "A", YAxis: "B"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}
	// Name column is text, so the grid covers columns A and B only.
	if len(pc.Series) != 4 {
		t.Fatalf("cell count = %d, want 4", len(pc.Series))
	}
	if pc.Summary.Categories != nil {
		t.Errorf("heatmap Categories = %v, want nil", pc.Summary.Categories)
	}

	cells := map[[2]string]float64{}
	for _, p := range pc.Series {
		c := p.(HeatmapCell)
		cells[[2]string{c.XLabel, c.YLabel}] = c.Correlation
	}
	if got := cells[[2]string{"A", "A"}]; math.Abs(got-1) > 1e-9 {
		t.Errorf("self-correlation = %v, want 1", got)
	}
	// B is exactly 2*A, so off-diagonal correlation is 1 and symmetric.
	ab := cells[[2]string{"A", "B"}]
	ba := cells[[2]string{"B", "A"}]
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("grid not symmetric: A/B=%v B/A=%v", ab, ba)
	}
	if math.Abs(ab-1) > 1e-9 {
		t.Errorf("correlation of proportional columns = %v, want 1", ab)
	}
}

func TestTransformHeatmapNeedsTwoNumericColumns(t *testing.T) {
	tbl := table.New([][]string{
		{"Name", "A"},
		{"r1", "1"},
		{"r2", "2"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeHeatmap, XAxis: "A", YAxis: "A"}
	if pc := Transform(tbl, spec, nil); pc != nil {
		t.Errorf("Transform = %+v, want nil with one numeric column", pc)
	}
}

func TestTransformWaterfall(t *testing.T) {
	tbl := table.New([][]string{
		{"Step", "Change"},
		{"Start", "100"},
		{"Costs", "-30"},
		{"Growth", "50"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeWaterfall, XAxis: "Step", YAxis: "Change"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}

	points := make([]WaterfallPoint, len(pc.Series))
	for i, p := range pc.Series {
		points[i] = p.(WaterfallPoint)
	}
	if points[0].Start != 0 {
		t.Errorf("first Start = %v, want 0", points[0].Start)
	}
	wantCum := []float64{100, 70, 120}
	for i, p := range points {
		if p.Cumulative != wantCum[i] {
			t.Errorf("point %d Cumulative = %v, want %v", i, p.Cumulative, wantCum[i])
		}
		if i > 0 && p.Start != points[i-1].Cumulative {
			t.Errorf("point %d Start = %v, want previous Cumulative %v", i, p.Start, points[i-1].Cumulative)
		}
	}
}

func TestTransformFunnel(t *testing.T) {
	tbl := table.New([][]string{
		{"Stage", "Users"},
		{"Checkout", "120"},
		{"Visits", "1000"},
		{"Signup", "400"},
	}, true)
	spec := recommend.ChartSpec{Type: recommend.ChartTypeFunnel, XAxis: "Stage", YAxis: "Users"}
	pc := Transform(tbl, spec, nil)
	if pc == nil {
		t.Fatal("Transform returned nil")
	}

	wantOrder := []string{"Visits", "Signup", "Checkout"}
	for i, p := range pc.Series {
		if got := p.(FunnelPoint).Name; got != wantOrder[i] {
			t.Errorf("stage %d = %q, want %q", i, got, wantOrder[i])
		}
	}
	// Categories keep the encounter order from the sheet.
	if !reflect.DeepEqual(pc.Summary.Categories, []string{"Checkout", "Visits", "Signup"}) {
		t.Errorf("Categories = %v", pc.Summary.Categories)
	}
}

func TestTransformSkips(t *testing.T) {
	textOnly := table.New([][]string{
		{"Name", "Note"},
		{"a", "hello"},
		{"b", "world"},
	}, true)

	tests := []struct {
		name string
		tbl  *table.RawTable
		spec recommend.ChartSpec
	}{
		{"nil table", nil, barSpec(recommend.ChartTypeBar)},
		{"empty table", table.New(nil, true), barSpec(recommend.ChartTypeBar)},
		{"one column", table.New([][]string{{"Only"}, {"1"}}, true), barSpec(recommend.ChartTypeBar)},
		{"no numeric data", textOnly, recommend.ChartSpec{Type: recommend.ChartTypeBar, XAxis: "Name", YAxis: "Note"}},
		{"unknown type", salesTable(), recommend.ChartSpec{Type: "treemap", XAxis: "Month", YAxis: "Sales"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pc := Transform(tt.tbl, tt.spec, nil); pc != nil {
				t.Errorf("Transform = %+v, want nil", pc)
			}
		})
	}
}

func TestTransformGroupedAggregation(t *testing.T) {
	tbl := table.New([][]string{
		{"Month", "Sales", "Region"},
		{"Jan", "100", "East"},
		{"Feb", "200", "West"},
		{"Mar", "50", "East"},
	}, true)

	tests := []struct {
		agg  recommend.Aggregation
		east float64
	}{
		{recommend.AggregationSum, 150},
		{recommend.AggregationAvg, 75},
		{recommend.AggregationCount, 2},
		{recommend.AggregationMax, 100},
		{recommend.AggregationMin, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.agg), func(t *testing.T) {
			spec := barSpec(recommend.ChartTypeBar)
			spec.GroupBy = "Region"
			spec.Aggregation = tt.agg

			pc := Transform(tbl, spec, nil)
			if pc == nil {
				t.Fatal("Transform returned nil")
			}
			if pc.Summary.PointCount != 2 {
				t.Fatalf("PointCount = %d, want 2 groups", pc.Summary.PointCount)
			}
			east := pc.Series[0].(XYPoint)
			if east.Y != tt.east {
				t.Errorf("east group value = %v, want %v", east.Y, tt.east)
			}
		})
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"perfect negative", []float64{1, 2, 3}, []float64{3, 2, 1}, -1},
		{"constant column", []float64{1, 2, 3}, []float64{5, 5, 5}, 0},
		{"mismatched lengths", []float64{1, 2}, []float64{1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pearson(tt.xs, tt.ys); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("pearson = %v, want %v", got, tt.want)
			}
		})
	}
}
