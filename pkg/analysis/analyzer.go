// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package analysis

import (
	"context"
	"fmt"

	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/spreadsheet"
	"github.com/teradata-labs/sheetviz/pkg/table"
	"github.com/teradata-labs/sheetviz/pkg/transform"
	"go.uber.org/zap"
)

// NarrativeUnavailable is the placeholder shown when the model could not
// produce analysis text. There is no partial substitute for missing
// narrative, so this is the one user-visible error string in the pipeline.
const NarrativeUnavailable = "AI analysis could not be generated for this file. " +
	"The data and charts below were processed without narrative context."

// Analyzer runs one full analysis pass: profile the table, ask the model
// for narrative and chart recommendations, normalize the recommendations,
// and transform the surviving specs into chart-ready data.
type Analyzer struct {
	// LLM produces completions. Required.
	LLM Completer
	// Logger receives pipeline diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Result is everything one analysis run produces. Instances are replaced
// wholesale on the next run; nothing in them is mutated afterwards.
type Result struct {
	Profile   spreadsheet.DataProfile
	Narrative string
	Analysis  recommend.ChartAnalysis
	Specs     []recommend.ChartSpec
	Charts    []*transform.ProcessedChartData
}

// Analyze profiles the table and runs the model-backed pipeline. Chart
// failures degrade to fewer (or zero) charts; only a missing table is an
// error.
func (a *Analyzer) Analyze(ctx context.Context, tbl *table.RawTable, fileName string) (*Result, error) {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if tbl == nil || len(tbl.Rows) == 0 {
		return nil, fmt.Errorf("no data to analyze")
	}

	res := &Result{Profile: spreadsheet.Profile(tbl, fileName)}

	narrative, err := a.LLM.Complete(ctx, BuildNarrativePrompt(res.Profile))
	if err != nil {
		logger.Error("narrative analysis failed", zap.Error(err))
		res.Narrative = NarrativeUnavailable
	} else {
		res.Narrative = narrative
	}

	chartReply, err := a.LLM.Complete(ctx, BuildChartPrompt(res.Profile))
	if err != nil {
		logger.Error("chart analysis failed", zap.Error(err))
		res.Analysis = recommend.ChartAnalysis{
			ShouldCreateCharts: false,
			Reasoning:          "Error analyzing data for charts",
			DataInsights:       "Unable to analyze data patterns",
		}
		return res, nil
	}
	res.Analysis = ParseChartAnalysis(chartReply, logger)

	if !res.Analysis.ShouldCreateCharts || len(res.Analysis.RecommendedCharts) == 0 {
		logger.Info("model recommended no charts",
			zap.String("reasoning", res.Analysis.Reasoning))
		return res, nil
	}

	res.Specs = recommend.Normalize(res.Analysis.RecommendedCharts, tbl.Headers(), logger)
	for _, spec := range res.Specs {
		if pc := transform.Transform(tbl, spec, logger); pc != nil {
			res.Charts = append(res.Charts, pc)
			logger.Debug("generated chart",
				zap.String("type", string(spec.Type)),
				zap.String("title", spec.Title),
				zap.Int("points", pc.Summary.PointCount))
		} else {
			logger.Warn("skipping chart with no plottable data",
				zap.String("type", string(spec.Type)),
				zap.String("title", spec.Title))
		}
	}
	logger.Info("chart generation complete",
		zap.Int("generated", len(res.Charts)),
		zap.Int("recommended", len(res.Specs)))
	return res, nil
}
