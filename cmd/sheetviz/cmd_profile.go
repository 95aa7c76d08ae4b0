// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/sheetviz/internal/log"
	"github.com/teradata-labs/sheetviz/pkg/spreadsheet"
)

// profileCmd profiles a spreadsheet without calling the model. Useful for
// checking what the analyzer would see before spending tokens on it.
var profileCmd = &cobra.Command{
	Use:   "profile <file.xlsx>",
	Short: "Profile a spreadsheet's structure without model analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		reader := &spreadsheet.Reader{
			MaxDataRows: config.Charts.MaxDataRows,
			Logger:      log.Logger(),
		}
		tbl, err := reader.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		profile := spreadsheet.Profile(tbl, filepath.Base(path))

		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
