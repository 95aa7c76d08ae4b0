// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package analysis asks a text-generation model for narrative analysis and
// chart recommendations over a profiled spreadsheet, and parses the model's
// untrusted reply into the structures the chart pipeline consumes.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultModel is the default Claude model.
	DefaultModel = "claude-sonnet-4-5-20250929"
	// DefaultEndpoint is the default Anthropic Messages API endpoint.
	DefaultEndpoint = "https://api.anthropic.com/v1/messages"
	// DefaultMaxTokens is the default maximum tokens per request.
	DefaultMaxTokens = 4096
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 60 * time.Second
)

// Completer produces one model completion for one prompt. The concrete
// Client talks to the Anthropic API; tests substitute a canned fake.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ClientConfig holds configuration for the Anthropic client.
type ClientConfig struct {
	APIKey      string
	Model       string // Default: claude-sonnet-4-5-20250929
	Endpoint    string // Default: https://api.anthropic.com/v1/messages
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// Client implements Completer against the Anthropic Messages API.
type Client struct {
	apiKey      string
	model       string
	endpoint    string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// NewClient creates an Anthropic client. Unset fields fall back to
// environment variables and then package defaults.
func NewClient(config ClientConfig) *Client {
	if config.APIKey == "" {
		config.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if config.Model == "" {
		if envModel := os.Getenv("ANTHROPIC_DEFAULT_MODEL"); envModel != "" {
			config.Model = envModel
		} else {
			config.Model = DefaultModel
		}
	}
	if config.Endpoint == "" {
		if envEndpoint := os.Getenv("ANTHROPIC_API_ENDPOINT"); envEndpoint != "" {
			config.Endpoint = envEndpoint
		} else {
			config.Endpoint = DefaultEndpoint
		}
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	return &Client{
		apiKey:      config.APIKey,
		model:       config.Model,
		endpoint:    config.Endpoint,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		httpClient:  &http.Client{Timeout: config.Timeout},
	}
}

// messagesRequest is the Anthropic Messages API request body.
type messagesRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// messagesResponse is the Anthropic Messages API response body.
type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Error      *apiError      `json:"error"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Complete sends a single-turn prompt and returns the concatenated text of
// the model's reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := messagesRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []message{
			{Role: "user", Content: []contentBlock{{Type: "text", Text: prompt}}},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp messagesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("API error: %s: %s", resp.Error.Type, resp.Error.Message)
	}

	var out string
	for _, block := range resp.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out, nil
}
