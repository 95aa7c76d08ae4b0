// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/sheetviz/pkg/capture"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "claude-sonnet-4-5-20250929", config.LLM.Model)
	assert.Equal(t, 4096, config.LLM.MaxTokens)
	assert.Equal(t, 100, config.Charts.MaxDataRows)

	assert.Equal(t, 1500, config.Capture.BaseDelayMs)
	assert.Equal(t, 500, config.Capture.DelayIncrementMs)
	assert.Equal(t, 5, config.Capture.MaxAttempts)
}

func TestScheduleFromConfig(t *testing.T) {
	s := scheduleFromConfig(CaptureConfig{
		BaseDelayMs:      2000,
		DelayIncrementMs: 250,
		MaxAttempts:      3,
	})
	assert.Equal(t, captureSchedule{BaseDelayMs: 2000, DelayIncrementMs: 250, MaxAttempts: 3}, s)
}

func TestScheduleFromConfigZeroFallsBack(t *testing.T) {
	s := scheduleFromConfig(CaptureConfig{})
	assert.Equal(t, capture.DefaultMaxAttempts, s.MaxAttempts)
	assert.Equal(t, 1500, s.BaseDelayMs)
	assert.Equal(t, 500, s.DelayIncrementMs)
}
