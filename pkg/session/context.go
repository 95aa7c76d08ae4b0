// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package session

import "context"

// runIDKey is the context key for analysis run IDs
type runIDKey struct{}

// WithRunID injects an analysis run ID into the context, tying log output
// from downstream pipeline stages back to the run that triggered them
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext extracts the analysis run ID from the context
// Returns empty string if not found
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDKey{}).(string); ok {
		return runID
	}
	return ""
}
