// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/sheetviz/internal/log"
	"github.com/teradata-labs/sheetviz/pkg/analysis"
	"github.com/teradata-labs/sheetviz/pkg/capture"
	"github.com/teradata-labs/sheetviz/pkg/recommend"
	"github.com/teradata-labs/sheetviz/pkg/render"
	"github.com/teradata-labs/sheetviz/pkg/report"
	"github.com/teradata-labs/sheetviz/pkg/session"
	"github.com/teradata-labs/sheetviz/pkg/spreadsheet"
	"github.com/teradata-labs/sheetviz/pkg/transform"
	"go.uber.org/zap"
)

var (
	analyzeOutput   string
	analyzeNoCharts bool
	analyzeTimeout  int
)

// analyzeCmd runs the full pipeline over one spreadsheet and writes a JSON
// analysis document: profile, narrative, chart data, ECharts configs, and
// the report section blocks.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.xlsx>",
	Short: "Analyze a spreadsheet and recommend charts",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the analysis JSON to this path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeNoCharts, "no-charts", false, "skip chart recommendation and data transformation")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 300, "overall pipeline timeout in seconds")
	rootCmd.AddCommand(analyzeCmd)
}

// chartOutput pairs one chart's processed data with its ECharts config.
type chartOutput struct {
	Data   *transform.ProcessedChartData `json:"data"`
	Option json.RawMessage               `json:"echartsOption"`
}

// captureSchedule is the retry schedule a rendering host should apply when
// capturing the charts in this document.
type captureSchedule struct {
	BaseDelayMs      int `json:"baseDelayMs"`
	DelayIncrementMs int `json:"delayIncrementMs"`
	MaxAttempts      int `json:"maxAttempts"`
}

func scheduleFromConfig(cfg CaptureConfig) captureSchedule {
	s := captureSchedule{
		BaseDelayMs:      cfg.BaseDelayMs,
		DelayIncrementMs: cfg.DelayIncrementMs,
		MaxAttempts:      cfg.MaxAttempts,
	}
	if s.BaseDelayMs <= 0 {
		s.BaseDelayMs = int(capture.DefaultBaseDelay / time.Millisecond)
	}
	if s.DelayIncrementMs <= 0 {
		s.DelayIncrementMs = int(capture.DefaultDelayIncrement / time.Millisecond)
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = capture.DefaultMaxAttempts
	}
	return s
}

// analysisDocument is the analyze command's JSON output.
type analysisDocument struct {
	File      string                  `json:"file"`
	RunID     string                  `json:"runId"`
	Profile   spreadsheet.DataProfile `json:"profile"`
	Narrative string                  `json:"narrative"`
	Analysis  recommend.ChartAnalysis `json:"analysis"`
	Charts    []chartOutput           `json:"charts,omitempty"`
	Capture   captureSchedule         `json:"capture"`
	Report    []report.Block          `json:"report"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	sess := session.New(log.Logger())
	runID := sess.BeginRun()
	logger := log.Logger().With(zap.String("run", runID))

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(analyzeTimeout)*time.Second)
	defer cancel()
	ctx = session.WithRunID(ctx, runID)

	reader := &spreadsheet.Reader{
		MaxDataRows: config.Charts.MaxDataRows,
		Logger:      logger,
	}
	tbl, err := reader.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	client := analysis.NewClient(analysis.ClientConfig{
		APIKey:      config.LLM.APIKey,
		Model:       config.LLM.Model,
		Endpoint:    config.LLM.Endpoint,
		MaxTokens:   config.LLM.MaxTokens,
		Temperature: config.LLM.Temperature,
		Timeout:     time.Duration(config.LLM.TimeoutSeconds) * time.Second,
	})
	analyzer := &analysis.Analyzer{LLM: client, Logger: logger}

	res, err := analyzer.Analyze(ctx, tbl, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	sess.PublishRun(runID, res)

	doc := analysisDocument{
		File:      path,
		RunID:     runID,
		Profile:   res.Profile,
		Narrative: res.Narrative,
		Analysis:  res.Analysis,
		Capture:   scheduleFromConfig(config.Capture),
	}

	if !analyzeNoCharts {
		gen := render.NewGenerator(nil)
		for _, pc := range res.Charts {
			option, err := gen.Generate(pc)
			if err != nil {
				logger.Warn("skipping unrenderable chart",
					zap.String("title", pc.Spec.Title), zap.Error(err))
				continue
			}
			doc.Charts = append(doc.Charts, chartOutput{
				Data:   pc,
				Option: json.RawMessage(option),
			})
		}
	}

	// The CLI has no rasterizer, so the report section carries the
	// fallback notice; callers with a rendering surface capture images and
	// rebuild the section themselves.
	doc.Report = report.ChartsUnavailableNotice(nil)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if analyzeOutput == "" {
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}
	if err := os.WriteFile(analyzeOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", analyzeOutput, err)
	}
	logger.Info("analysis written", zap.String("path", analyzeOutput), zap.Int("charts", len(doc.Charts)))
	return nil
}
