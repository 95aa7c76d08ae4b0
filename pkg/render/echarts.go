// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package render generates ECharts option configurations from processed
// chart data. The rendering surface itself (browser or headless) lives
// outside this module; it receives these configs, draws the charts, and
// hands live handles back to the capture pipeline.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/transform"
)

// Style holds the design tokens applied to every generated config.
type Style struct {
	ColorText      string
	ColorTextMuted string
	ColorBorder    string
	FontFamily     string
	FontSizeTitle  int
	FontSizeLabel  int
}

// DefaultStyle returns tokens tuned for light report backgrounds.
func DefaultStyle() *Style {
	return &Style{
		ColorText:      "#1f2937",
		ColorTextMuted: "#6b7280",
		ColorBorder:    "#e5e7eb",
		FontFamily:     "Helvetica, Arial, sans-serif",
		FontSizeTitle:  14,
		FontSizeLabel:  11,
	}
}

// Generator builds ECharts JSON configurations.
type Generator struct {
	style *Style
}

// NewGenerator creates a generator; a nil style takes the defaults.
func NewGenerator(style *Style) *Generator {
	if style == nil {
		style = DefaultStyle()
	}
	return &Generator{style: style}
}

// Generate creates the ECharts option JSON for one processed chart.
func (g *Generator) Generate(pc *transform.ProcessedChartData) (string, error) {
	if pc == nil || len(pc.Series) == 0 {
		return "", fmt.Errorf("no chart data to render")
	}

	var config map[string]interface{}
	switch pc.Spec.Type {
	case recommend.ChartTypeBar, recommend.ChartTypeLine, recommend.ChartTypeArea:
		config = g.xyChart(pc, string(pc.Spec.Type))
	case recommend.ChartTypePie:
		config = g.pieChart(pc)
	case recommend.ChartTypeScatter:
		config = g.scatterChart(pc)
	case recommend.ChartTypeCombo:
		config = g.comboChart(pc)
	case recommend.ChartTypeHistogram:
		config = g.histogramChart(pc)
	case recommend.ChartTypeHeatmap:
		config = g.heatmapChart(pc)
	case recommend.ChartTypeWaterfall:
		config = g.waterfallChart(pc)
	case recommend.ChartTypeFunnel:
		config = g.funnelChart(pc)
	default:
		return "", fmt.Errorf("unsupported chart type %q", pc.Spec.Type)
	}

	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ECharts config: %w", err)
	}
	return string(jsonBytes), nil
}

func (g *Generator) xyChart(pc *transform.ProcessedChartData, kind string) map[string]interface{} {
	labels := make([]string, 0, len(pc.Series))
	values := make([]float64, 0, len(pc.Series))
	for _, p := range pc.Series {
		xy := p.(transform.XYPoint)
		labels = append(labels, xy.X)
		values = append(values, xy.Y)
	}

	series := map[string]interface{}{
		"type": "bar",
		"data": values,
		"itemStyle": map[string]interface{}{
			"color": pc.Colors[0],
		},
	}
	if kind == "line" || kind == "area" {
		series["type"] = "line"
		series["smooth"] = true
		if kind == "area" {
			series["areaStyle"] = map[string]interface{}{"opacity": 0.35}
		}
	}

	return g.base(pc, map[string]interface{}{
		"xAxis":  g.categoryAxis(labels),
		"yAxis":  g.valueAxis(),
		"series": []interface{}{series},
	})
}

func (g *Generator) pieChart(pc *transform.ProcessedChartData) map[string]interface{} {
	data := make([]interface{}, 0, len(pc.Series))
	for i, p := range pc.Series {
		slice := p.(transform.PiePoint)
		data = append(data, map[string]interface{}{
			"name":  slice.Name,
			"value": slice.Value,
			"itemStyle": map[string]interface{}{
				"color": pc.Colors[i%len(pc.Colors)],
			},
		})
	}

	return g.base(pc, map[string]interface{}{
		"series": []interface{}{
			map[string]interface{}{
				"type":   "pie",
				"radius": "65%",
				"data":   data,
				"label": map[string]interface{}{
					"formatter":  "{b}: {d}%",
					"color":      g.style.ColorText,
					"fontFamily": g.style.FontFamily,
					"fontSize":   g.style.FontSizeLabel,
				},
			},
		},
	})
}

func (g *Generator) scatterChart(pc *transform.ProcessedChartData) map[string]interface{} {
	data := make([]interface{}, 0, len(pc.Series))
	for _, p := range pc.Series {
		pt := p.(transform.ScatterPoint)
		data = append(data, []float64{pt.X, pt.Y})
	}

	return g.base(pc, map[string]interface{}{
		"xAxis": g.valueAxis(),
		"yAxis": g.valueAxis(),
		"series": []interface{}{
			map[string]interface{}{
				"type":       "scatter",
				"data":       data,
				"symbolSize": 9,
				"itemStyle":  map[string]interface{}{"color": pc.Colors[0]},
			},
		},
	})
}

func (g *Generator) comboChart(pc *transform.ProcessedChartData) map[string]interface{} {
	labels := make([]string, 0, len(pc.Series))
	primary := make([]float64, 0, len(pc.Series))
	secondary := make([]interface{}, 0, len(pc.Series))
	hasSecondary := false

	for _, p := range pc.Series {
		xy := p.(transform.XYPoint)
		labels = append(labels, xy.X)
		primary = append(primary, xy.Y)
		if xy.Secondary != nil {
			secondary = append(secondary, *xy.Secondary)
			hasSecondary = true
		} else {
			secondary = append(secondary, nil)
		}
	}

	seriesList := []interface{}{
		map[string]interface{}{
			"type":      "bar",
			"data":      primary,
			"itemStyle": map[string]interface{}{"color": pc.Colors[0]},
		},
	}
	if hasSecondary {
		seriesList = append(seriesList, map[string]interface{}{
			"type":      "line",
			"smooth":    true,
			"data":      secondary,
			"itemStyle": map[string]interface{}{"color": pc.Colors[1%len(pc.Colors)]},
		})
	}

	return g.base(pc, map[string]interface{}{
		"xAxis":  g.categoryAxis(labels),
		"yAxis":  g.valueAxis(),
		"series": seriesList,
	})
}

func (g *Generator) histogramChart(pc *transform.ProcessedChartData) map[string]interface{} {
	labels := make([]string, 0, len(pc.Series))
	counts := make([]int, 0, len(pc.Series))
	for _, p := range pc.Series {
		bin := p.(transform.HistogramBin)
		labels = append(labels, bin.Range)
		counts = append(counts, bin.Count)
	}

	return g.base(pc, map[string]interface{}{
		"xAxis": g.categoryAxis(labels),
		"yAxis": g.valueAxis(),
		"series": []interface{}{
			map[string]interface{}{
				"type":           "bar",
				"data":           counts,
				"barCategoryGap": "0%",
				"itemStyle":      map[string]interface{}{"color": pc.Colors[0]},
			},
		},
	})
}

func (g *Generator) heatmapChart(pc *transform.ProcessedChartData) map[string]interface{} {
	var xLabels, yLabels []string
	seenX := map[string]int{}
	seenY := map[string]int{}
	data := make([]interface{}, 0, len(pc.Series))

	for _, p := range pc.Series {
		cell := p.(transform.HeatmapCell)
		xi, ok := seenX[cell.XLabel]
		if !ok {
			xi = len(xLabels)
			seenX[cell.XLabel] = xi
			xLabels = append(xLabels, cell.XLabel)
		}
		yi, ok := seenY[cell.YLabel]
		if !ok {
			yi = len(yLabels)
			seenY[cell.YLabel] = yi
			yLabels = append(yLabels, cell.YLabel)
		}
		data = append(data, []interface{}{xi, yi, cell.Correlation})
	}

	return g.base(pc, map[string]interface{}{
		"xAxis": g.categoryAxis(xLabels),
		"yAxis": map[string]interface{}{
			"type":      "category",
			"data":      yLabels,
			"axisLabel": g.axisLabelStyle(),
		},
		"visualMap": map[string]interface{}{
			"min":        -1,
			"max":        1,
			"calculable": true,
			"orient":     "horizontal",
			"left":       "center",
			"inRange": map[string]interface{}{
				"color": []string{"#ef4444", "#f5f5f5", "#2a9d8f"},
			},
		},
		"series": []interface{}{
			map[string]interface{}{
				"type": "heatmap",
				"data": data,
				"label": map[string]interface{}{
					"show":      true,
					"formatter": "{@[2]}",
					"fontSize":  g.style.FontSizeLabel - 2,
				},
			},
		},
	})
}

// waterfallChart uses the stacked-bar idiom: an invisible base series lifts
// each visible delta bar to its starting total.
func (g *Generator) waterfallChart(pc *transform.ProcessedChartData) map[string]interface{} {
	labels := make([]string, 0, len(pc.Series))
	base := make([]float64, 0, len(pc.Series))
	deltas := make([]float64, 0, len(pc.Series))

	for _, p := range pc.Series {
		wp := p.(transform.WaterfallPoint)
		labels = append(labels, wp.Name)
		if wp.Delta >= 0 {
			base = append(base, wp.Start)
			deltas = append(deltas, wp.Delta)
		} else {
			base = append(base, wp.Cumulative)
			deltas = append(deltas, -wp.Delta)
		}
	}

	return g.base(pc, map[string]interface{}{
		"xAxis": g.categoryAxis(labels),
		"yAxis": g.valueAxis(),
		"series": []interface{}{
			map[string]interface{}{
				"type":  "bar",
				"stack": "total",
				"data":  base,
				"itemStyle": map[string]interface{}{
					"borderColor": "transparent",
					"color":       "transparent",
				},
			},
			map[string]interface{}{
				"type":      "bar",
				"stack":     "total",
				"data":      deltas,
				"itemStyle": map[string]interface{}{"color": pc.Colors[0]},
			},
		},
	})
}

func (g *Generator) funnelChart(pc *transform.ProcessedChartData) map[string]interface{} {
	data := make([]interface{}, 0, len(pc.Series))
	for i, p := range pc.Series {
		stage := p.(transform.FunnelPoint)
		data = append(data, map[string]interface{}{
			"name":  stage.Name,
			"value": stage.Value,
			"itemStyle": map[string]interface{}{
				"color": pc.Colors[i%len(pc.Colors)],
			},
		})
	}

	return g.base(pc, map[string]interface{}{
		"series": []interface{}{
			map[string]interface{}{
				"type": "funnel",
				"sort": "descending",
				"data": data,
				"label": map[string]interface{}{
					"show":       true,
					"position":   "inside",
					"fontFamily": g.style.FontFamily,
				},
			},
		},
	})
}

// base wraps chart-specific config with the shared title, grid, and tooltip
// settings.
func (g *Generator) base(pc *transform.ProcessedChartData, specific map[string]interface{}) map[string]interface{} {
	config := map[string]interface{}{
		"backgroundColor": "transparent",
		"animation":       false,
		"title": map[string]interface{}{
			"text": pc.Spec.Title,
			"left": "center",
			"textStyle": map[string]interface{}{
				"color":      g.style.ColorText,
				"fontFamily": g.style.FontFamily,
				"fontSize":   g.style.FontSizeTitle,
			},
		},
		"grid": map[string]interface{}{
			"left":         "3%",
			"right":        "4%",
			"bottom":       "3%",
			"top":          60,
			"containLabel": true,
		},
		"tooltip": map[string]interface{}{
			"trigger": "item",
			"textStyle": map[string]interface{}{
				"fontFamily": g.style.FontFamily,
			},
		},
	}
	for k, v := range specific {
		config[k] = v
	}
	return config
}

func (g *Generator) categoryAxis(labels []string) map[string]interface{} {
	return map[string]interface{}{
		"type":      "category",
		"data":      labels,
		"axisLabel": g.axisLabelStyle(),
		"axisLine": map[string]interface{}{
			"lineStyle": map[string]interface{}{"color": g.style.ColorBorder},
		},
	}
}

func (g *Generator) valueAxis() map[string]interface{} {
	return map[string]interface{}{
		"type":      "value",
		"axisLabel": g.axisLabelStyle(),
		"splitLine": map[string]interface{}{
			"lineStyle": map[string]interface{}{"color": g.style.ColorBorder},
		},
	}
}

func (g *Generator) axisLabelStyle() map[string]interface{} {
	return map[string]interface{}{
		"color":      g.style.ColorTextMuted,
		"fontFamily": g.style.FontFamily,
		"fontSize":   g.style.FontSizeLabel,
	}
}
