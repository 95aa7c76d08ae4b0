// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package analysis

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"go.uber.org/zap"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ParseChartAnalysis decodes the model's chart-recommendation reply. The
// model is asked for bare JSON but often wraps it in a markdown fence or
// surrounds it with prose, so the first fenced object wins, then the whole
// trimmed body. The parse is total: any failure yields a no-charts result
// rather than an error, since a report without charts is still a report.
func ParseChartAnalysis(response string, logger *zap.Logger) recommend.ChartAnalysis {
	if logger == nil {
		logger = zap.NewNop()
	}

	body := strings.TrimSpace(response)
	if m := fencedJSON.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var analysis recommend.ChartAnalysis
	if err := json.Unmarshal([]byte(body), &analysis); err != nil {
		logger.Error("error parsing chart recommendations", zap.Error(err))
		return recommend.ChartAnalysis{
			ShouldCreateCharts: false,
			Reasoning:          "Error analyzing data for charts",
			DataInsights:       "Unable to analyze data patterns",
		}
	}
	return analysis
}
