// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package session serializes concurrent analysis runs over one loaded
// spreadsheet. Runs can overlap (a user re-triggers analysis before the
// previous run finishes); only the most recently started run may publish
// its result.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/teradata-labs/sheetviz/pkg/analysis"
	"go.uber.org/zap"
)

// Session tracks the in-flight analysis run and the last published result.
type Session struct {
	mu        sync.Mutex
	currentID string
	result    *analysis.Result
	logger    *zap.Logger
}

// New creates a session. A nil logger disables logging.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger}
}

// BeginRun marks a new run as current and returns its ID. Any earlier run
// still in flight becomes stale; its eventual PublishRun is rejected.
func (s *Session) BeginRun() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	if s.currentID != "" {
		s.logger.Debug("superseding in-flight run", zap.String("stale_run", s.currentID))
	}
	s.currentID = id
	return id
}

// PublishRun stores the result if id is still the current run. It reports
// whether the result was accepted.
func (s *Session) PublishRun(id string, result *analysis.Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.currentID {
		s.logger.Debug("dropping stale run result", zap.String("run", id))
		return false
	}
	s.result = result
	s.currentID = ""
	return true
}

// Snapshot returns the last published result, or nil if none has been
// published yet.
func (s *Session) Snapshot() *analysis.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
