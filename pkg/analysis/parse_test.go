// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartReply = `{
	"shouldCreateCharts": true,
	"reasoning": "clear monthly trend",
	"dataInsights": "sales grow through Q1",
	"recommendedCharts": [
		{"type": "bar", "title": "Sales by Month", "xAxis": "Month", "yAxis": "Sales", "priority": 1}
	]
}`

func TestParseChartAnalysisBareJSON(t *testing.T) {
	analysis := ParseChartAnalysis(chartReply, nil)
	assert.True(t, analysis.ShouldCreateCharts)
	require.Len(t, analysis.RecommendedCharts, 1)
	assert.Equal(t, "bar", analysis.RecommendedCharts[0].Type)
}

func TestParseChartAnalysisFenced(t *testing.T) {
	responses := []string{
		"```json\n" + chartReply + "\n```",
		"```\n" + chartReply + "\n```",
		"Here is my analysis:\n\n```json\n" + chartReply + "\n```\n\nLet me know if you need more.",
	}
	for _, resp := range responses {
		analysis := ParseChartAnalysis(resp, nil)
		assert.True(t, analysis.ShouldCreateCharts)
		assert.Len(t, analysis.RecommendedCharts, 1)
	}
}

func TestParseChartAnalysisGarbage(t *testing.T) {
	for _, resp := range []string{"", "I cannot analyze this data.", "{broken json", "[1,2,3]"} {
		analysis := ParseChartAnalysis(resp, nil)
		assert.False(t, analysis.ShouldCreateCharts)
		assert.Equal(t, "Error analyzing data for charts", analysis.Reasoning)
		assert.Equal(t, "Unable to analyze data patterns", analysis.DataInsights)
		assert.Empty(t, analysis.RecommendedCharts)
	}
}

func TestParseChartAnalysisToleratesBadEntries(t *testing.T) {
	resp := `{
		"shouldCreateCharts": true,
		"recommendedCharts": [
			{"type": "pie", "title": "Share", "xAxis": 0, "priority": "2"},
			"garbled"
		]
	}`
	analysis := ParseChartAnalysis(resp, nil)
	assert.True(t, analysis.ShouldCreateCharts)
	require.Len(t, analysis.RecommendedCharts, 2)
	assert.Equal(t, "pie", analysis.RecommendedCharts[0].Type)
	assert.EqualValues(t, "0", analysis.RecommendedCharts[0].XAxis)
	assert.EqualValues(t, 2, analysis.RecommendedCharts[0].Priority)
}
