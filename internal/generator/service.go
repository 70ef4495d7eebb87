// Package generator runs a resume through the completion service and the
// future normalizer.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/alternate-futures/internal/futures"
	"github.com/jonathan/alternate-futures/internal/llm"
	"github.com/jonathan/alternate-futures/internal/prompts"
	"github.com/jonathan/alternate-futures/internal/schemas"
	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
)

// emptyContent is returned when the provider answers with no text at all.
// Any other text, whitespace included, is passed through unchanged.
const emptyContent = "[]"

// UpstreamError wraps a completion-service failure.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// Service generates projected timelines with an llm.Client.
type Service struct {
	client llm.Client
}

// NewService creates a Service backed by client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Generate asks the completion service for the normalized and extended
// timeline and returns its raw text. There are no retries.
func (s *Service) Generate(ctx context.Context, req types.GenerateRequest) (string, error) {
	system, user, err := prompts.Futures(req.ResumeText, req.Count(), req.Span())
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	log.Printf("[generator] requesting %d future roles over %d years (model %s)", req.Count(), req.Span(), s.client.Model())

	content, err := s.client.Complete(ctx, system, user)
	if err != nil {
		return "", &UpstreamError{Cause: err}
	}
	if content == "" {
		return emptyContent, nil
	}
	return content, nil
}

// Futures parses the resume, generates a projection and normalizes it.
// An empty Futures slice is a valid "no results" outcome, not an error.
func (s *Service) Futures(ctx context.Context, req types.GenerateRequest, anchor futures.Anchor) (*types.FuturesResponse, error) {
	parsed := timeline.Parse(req.ResumeText)

	content, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &types.FuturesResponse{
		Timeline: parsed,
		Warnings: Diagnose(content),
	}
	resp.Futures = futures.NormalizeWithOptions(content, futures.Options{
		FutureCount:     req.Count(),
		SpanYears:       req.Span(),
		Anchor:          anchor,
		ResumeLastStart: timeline.LastStartYear(parsed),
	})

	if len(resp.Warnings) > 0 {
		log.Printf("[generator] completion output has %d schema warnings", len(resp.Warnings))
	}
	return resp, nil
}

// Diagnose reports how the raw completion text deviates from the requested
// format. It never affects normalization.
func Diagnose(content string) []string {
	items, ok := futures.ExtractArray(content)
	if !ok {
		return []string{"completion output is not a JSON array"}
	}
	if !json.Valid([]byte(strings.TrimSpace(content))) {
		// Only the bracketed part parsed; validate that.
		doc, err := json.Marshal(items)
		if err != nil {
			return []string{err.Error()}
		}
		return append([]string{"completion output contains text around the JSON array"},
			schemas.Warnings(schemas.ValidateFutureEntries(string(doc)))...)
	}
	return schemas.Warnings(schemas.ValidateFutureEntries(content))
}
