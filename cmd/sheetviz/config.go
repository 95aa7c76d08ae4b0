// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultConfigFileName is the name of the config file (sheetviz.yaml).
const DefaultConfigFileName = "sheetviz"

// Config holds all configuration for the sheetviz CLI.
// Priority: CLI flags > config file > env vars > defaults
type Config struct {
	// LLM provider configuration
	LLM LLMConfig `mapstructure:"llm"`

	// Charts configuration
	Charts ChartsConfig `mapstructure:"charts"`

	// Capture retry configuration
	Capture CaptureConfig `mapstructure:"capture"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// LLMConfig holds model provider settings.
type LLMConfig struct {
	// APIKey is the Anthropic API key (CLI/env only, never from config file)
	APIKey string `mapstructure:"api_key"`

	// Model is the Anthropic model name
	Model string `mapstructure:"model"`

	// Endpoint overrides the Messages API endpoint (for proxies)
	Endpoint string `mapstructure:"endpoint"`

	// MaxTokens is the maximum tokens per request
	MaxTokens int `mapstructure:"max_tokens"`

	// Temperature is the sampling temperature
	Temperature float64 `mapstructure:"temperature"`

	// TimeoutSeconds is the HTTP timeout per request
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ChartsConfig holds chart pipeline settings.
type ChartsConfig struct {
	// MaxDataRows caps the number of data rows accepted per spreadsheet
	MaxDataRows int `mapstructure:"max_data_rows"`
}

// CaptureConfig holds image capture retry settings.
type CaptureConfig struct {
	// BaseDelayMs is the wait before the first capture attempt
	BaseDelayMs int `mapstructure:"base_delay_ms"`

	// DelayIncrementMs is added to the wait on each subsequent attempt
	DelayIncrementMs int `mapstructure:"delay_increment_ms"`

	// MaxAttempts is the number of capture attempts before giving up
	MaxAttempts int `mapstructure:"max_attempts"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (text, json)
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file, environment, and flags.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.sheetviz")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// Config file not found; using defaults + env vars + flags
	}

	viper.SetEnvPrefix("SHEETVIZ")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("llm.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("llm.max_tokens", 4096)
	viper.SetDefault("llm.temperature", 0.3)
	viper.SetDefault("llm.timeout_seconds", 60)

	viper.SetDefault("charts.max_data_rows", 100)

	viper.SetDefault("capture.base_delay_ms", 1500)
	viper.SetDefault("capture.delay_increment_ms", 500)
	viper.SetDefault("capture.max_attempts", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
