// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package analysis

import (
	"fmt"
	"strings"

	"github.com/teradata-labs/sheetviz/pkg/spreadsheet"
)

// BuildNarrativePrompt asks the model for the markdown analysis text that
// becomes the report narrative.
func BuildNarrativePrompt(p spreadsheet.DataProfile) string {
	var sb strings.Builder
	sb.WriteString("You are a professional data analyst. I'm providing you with a spreadsheet for comprehensive analysis.\n\n")
	writeProfile(&sb, p)
	sb.WriteString(`
## ANALYSIS REQUEST

Provide a comprehensive analysis using markdown formatting, structured as:

### 1. DATA UNDERSTANDING
What type of data is this? What business domain does it represent?

### 2. STRUCTURE ANALYSIS
Evaluate the data organization, quality, and completeness.

### 3. KEY INSIGHTS
The most important patterns, trends, or findings, as bullet points.

### 4. DATA QUALITY REVIEW
Missing values, inconsistencies, outliers, or formatting issues.

### 5. BUSINESS VALUE
What decisions could be made from this data?

### 6. RECOMMENDATIONS
Specific, actionable suggestions for improvement, analysis, or reporting.

Be specific and actionable; the output is embedded in a business report.`)
	return sb.String()
}

// BuildChartPrompt asks the model for chart recommendations in the JSON
// shape ParseChartAnalysis expects. Column references may be exact header
// names or 0-based indices; the normalizer repairs everything else.
func BuildChartPrompt(p spreadsheet.DataProfile) string {
	var sb strings.Builder
	sb.WriteString("You are a data visualization expert. Analyze this spreadsheet data and recommend charts for maximum analytical insight.\n\n")
	writeProfile(&sb, p)
	sb.WriteString(`
## CHART ANALYSIS

Provide your analysis in this JSON format:

` + "```json" + `
{
  "shouldCreateCharts": true,
  "reasoning": "why charts are beneficial and what insights they'll reveal",
  "dataInsights": "key patterns and relationships identified in the data",
  "recommendedCharts": [
    {
      "type": "bar|line|pie|area|scatter|combo|histogram|heatmap|waterfall|funnel",
      "title": "REQUIRED: descriptive chart title",
      "description": "what insights this chart reveals",
      "xAxis": "REQUIRED: exact column name or 0-based index",
      "yAxis": "REQUIRED for most charts: exact column name or 0-based index",
      "dataKey": "REQUIRED for pie/histogram: exact column name or 0-based index",
      "secondaryDataKey": "optional: second series for combo charts",
      "groupBy": "optional: column for grouping",
      "aggregation": "sum|avg|count|max|min",
      "chartVariant": "stacked|grouped|normalized",
      "priority": 1,
      "analyticalValue": "High|Medium|Low"
    }
  ],
  "suggestedCombinations": [
    {"charts": ["0", "1"], "reasoning": "why these complement each other"}
  ]
}
` + "```" + `

Requirements:
1. Recommend 4-8 charts covering different perspectives of the data.
2. Pie charts need dataKey instead of yAxis; histograms need dataKey.
3. Column references must be exact header names or 0-based indices.
4. priority is 1-10 with 1 the highest; only recommend charts the data supports.

Return only the JSON object, no additional text.`)
	return sb.String()
}

func writeProfile(sb *strings.Builder, p spreadsheet.DataProfile) {
	sb.WriteString("## DATA CONTEXT\n")
	fmt.Fprintf(sb, "- File Name: %s\n", p.FileName)
	fmt.Fprintf(sb, "- Total Rows: %d\n", p.TotalRows)
	fmt.Fprintf(sb, "- Total Columns: %d\n", p.TotalColumns)
	fmt.Fprintf(sb, "- Non-empty Rows: %d\n", p.NonEmptyRows)
	fmt.Fprintf(sb, "- Data Completeness: %d%%\n", p.Completeness)
	fmt.Fprintf(sb, "- Has Headers: %v\n", p.HasHeaders)
	fmt.Fprintf(sb, "- Column Types: %s\n", strings.Join(p.ColumnTypes, ", "))
	if len(p.Headers) > 0 {
		fmt.Fprintf(sb, "\nHEADERS: %s\n", strings.Join(p.Headers, " | "))
	}
	sb.WriteString("\n### SAMPLE DATA\n```\n")
	sb.WriteString(p.SampleContent)
	sb.WriteString("\n```\n")
}
