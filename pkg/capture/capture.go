// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package capture turns live rendered chart visuals into embeddable raster
// assets. Rendering happens asynchronously in an external component, so at
// export time a chart may not be drawn yet; the pipeline retries with an
// increasing delay and accepts the first non-empty batch.
package capture

import (
	"context"
	"time"

	"github.com/teradata-labs/sheetviz/pkg/session"
	"github.com/teradata-labs/sheetviz/pkg/transform"
	"go.uber.org/zap"
)

// Image is one rasterized chart visual.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

// Element is a located drawable node inside a chart surface.
type Element interface {
	// Bounds returns the rendered pixel size. Zero width or height means
	// layout has not completed or the element is hidden.
	Bounds() (width, height int)
	// Rasterize draws the element into a static image.
	Rasterize(ctx context.Context) (Image, error)
}

// ChartHandle is a live chart surface handed over by the rendering
// component once it mounts. A nil handle or a nil Visual means the chart is
// not (yet) rendered.
type ChartHandle interface {
	// Visual locates the chart's drawable element, nil if none is present.
	Visual() Element
}

// ImageAsset is a captured chart image plus the labeling needed to embed it
// in a document. Assets live only for the duration of one export.
type ImageAsset struct {
	ImageData   []byte
	Width       int
	Height      int
	Title       string
	Description string
	ChartType   string
}

// Defaults for the retry schedule. Later attempts wait longer on the
// assumption that rendering and layout are still settling.
const (
	DefaultBaseDelay      = 1500 * time.Millisecond
	DefaultDelayIncrement = 500 * time.Millisecond
	DefaultMaxAttempts    = 5
	DefaultCaptureGap     = 200 * time.Millisecond
)

// Pipeline captures rendered charts with a bounded-attempt retry policy.
// The zero value is usable; unset fields take the package defaults.
type Pipeline struct {
	// BaseDelay is the wait before the first capture attempt.
	BaseDelay time.Duration
	// DelayIncrement is added to the wait on each subsequent attempt.
	DelayIncrement time.Duration
	// MaxAttempts bounds how many capture rounds run before giving up.
	MaxAttempts int
	// CaptureGap is a settling pause between successive captures within
	// one attempt.
	CaptureGap time.Duration
	// Logger receives per-chart diagnostics. Nil means no logging.
	Logger *zap.Logger
}

func (p *Pipeline) withDefaults() Pipeline {
	out := *p
	if out.BaseDelay == 0 {
		out.BaseDelay = DefaultBaseDelay
	}
	if out.DelayIncrement == 0 {
		out.DelayIncrement = DefaultDelayIncrement
	}
	if out.MaxAttempts <= 0 {
		out.MaxAttempts = DefaultMaxAttempts
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// CaptureWithRetry captures as many charts as possible. On each attempt it
// waits baseDelay + attempt*increment, then tries every handle/data pair,
// skipping pairs that are missing, unlocated, or not yet laid out. The first
// attempt that captures at least one image wins: a report with three of five
// charts beats no report, so a partial batch is never retried to improve it.
// Only a fully empty attempt advances the loop; after MaxAttempts empty
// attempts the result is an empty slice and the caller degrades gracefully.
//
// Output preserves the relative order of chartsData for whichever subset
// succeeds. Cancelling the context aborts the current wait and returns what
// has been captured so far (always empty, given the first-non-empty-wins
// policy). CaptureWithRetry never returns an error.
func (p *Pipeline) CaptureWithRetry(ctx context.Context, handles []ChartHandle, chartsData []*transform.ProcessedChartData) []ImageAsset {
	cfg := p.withDefaults()
	if runID := session.RunIDFromContext(ctx); runID != "" {
		cfg.Logger = cfg.Logger.With(zap.String("run", runID))
	}
	cfg.Logger.Info("starting chart capture",
		zap.Int("charts", len(chartsData)),
		zap.Int("maxAttempts", cfg.MaxAttempts))

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		wait := cfg.BaseDelay + time.Duration(attempt)*cfg.DelayIncrement
		cfg.Logger.Debug("waiting for charts to render",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait))
		if !sleepCtx(ctx, wait) {
			cfg.Logger.Warn("chart capture cancelled", zap.Int("attempt", attempt+1))
			return nil
		}

		images := cfg.captureAll(ctx, handles, chartsData)
		if len(images) > 0 {
			cfg.Logger.Info("chart capture complete",
				zap.Int("captured", len(images)),
				zap.Int("requested", len(chartsData)),
				zap.Int("attempt", attempt+1))
			return images
		}
		cfg.Logger.Warn("no charts captured", zap.Int("attempt", attempt+1))
	}

	cfg.Logger.Error("failed to capture charts after all attempts",
		zap.Int("attempts", cfg.MaxAttempts))
	return nil
}

// captureAll runs one capture pass over every handle/data pair. A single
// chart's failure never aborts the batch.
func (p *Pipeline) captureAll(ctx context.Context, handles []ChartHandle, chartsData []*transform.ProcessedChartData) []ImageAsset {
	var images []ImageAsset

	for i, handle := range handles {
		if i >= len(chartsData) || chartsData[i] == nil || handle == nil {
			p.Logger.Warn("missing chart handle or data", zap.Int("chart", i))
			continue
		}
		data := chartsData[i]

		element := handle.Visual()
		if element == nil {
			p.Logger.Warn("chart visual not found", zap.Int("chart", i))
			continue
		}

		w, h := element.Bounds()
		if w == 0 || h == 0 {
			p.Logger.Warn("chart has zero-dimension bounds, not yet rendered",
				zap.Int("chart", i))
			continue
		}

		img, err := element.Rasterize(ctx)
		if err != nil {
			p.Logger.Warn("error rasterizing chart",
				zap.Int("chart", i),
				zap.String("title", data.Spec.Title),
				zap.Error(err))
			continue
		}
		if img.Width == 0 || img.Height == 0 {
			p.Logger.Warn("captured raster has zero dimensions", zap.Int("chart", i))
			continue
		}

		images = append(images, ImageAsset{
			ImageData:   img.Data,
			Width:       img.Width,
			Height:      img.Height,
			Title:       data.Spec.Title,
			Description: data.Spec.Description,
			ChartType:   string(data.Spec.Type),
		})
		p.Logger.Debug("captured chart",
			zap.Int("chart", i),
			zap.String("title", data.Spec.Title),
			zap.Int("width", img.Width),
			zap.Int("height", img.Height))

		if p.CaptureGap > 0 && !sleepCtx(ctx, p.CaptureGap) {
			break
		}
	}

	return images
}

// sleepCtx waits for d or until the context is cancelled; it reports whether
// the full wait elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
