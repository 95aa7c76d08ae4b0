// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/sheetviz/internal/log"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sheetviz",
	Short: "Spreadsheet analysis and chart recommendation pipeline",
	Long: `sheetviz profiles spreadsheet data, asks an LLM for narrative analysis
and chart recommendations, and turns the recommendations into chart-ready
data, ECharts configurations, and report sections.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sheetviz.yaml)")

	// LLM flags
	rootCmd.PersistentFlags().String("anthropic-key", "", "Anthropic API key (or ANTHROPIC_API_KEY env)")
	rootCmd.PersistentFlags().String("anthropic-model", "claude-sonnet-4-5-20250929", "Anthropic model")
	rootCmd.PersistentFlags().Float64("temperature", 0.3, "LLM temperature")
	rootCmd.PersistentFlags().Int("max-tokens", 4096, "Maximum tokens per request")

	// Chart pipeline flags
	rootCmd.PersistentFlags().Int("max-data-rows", 100, "Maximum spreadsheet data rows")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("llm.api_key", rootCmd.PersistentFlags().Lookup("anthropic-key"))
	_ = viper.BindPFlag("llm.model", rootCmd.PersistentFlags().Lookup("anthropic-model"))
	_ = viper.BindPFlag("llm.temperature", rootCmd.PersistentFlags().Lookup("temperature"))
	_ = viper.BindPFlag("llm.max_tokens", rootCmd.PersistentFlags().Lookup("max-tokens"))

	_ = viper.BindPFlag("charts.max_data_rows", rootCmd.PersistentFlags().Lookup("max-data-rows"))

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := log.Init(config.Logging.Level, config.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}
