// Package ai wraps the Gemini API behind a small completion port and
// provides the analysis calls built on top of it: sentiment escalation,
// deep-dive evaluation and insight generation.
package ai

import (
	"context"
	"errors"
	"fmt"

	"alpha-radar/internal/domain"

	genai "google.golang.org/genai"
)

// Completion is the narrow LLM port the analysis stages depend on.
type Completion interface {
	// Complete sends a system and user prompt and returns the raw model text.
	Complete(ctx context.Context, system, user string, temperature float32, maxTokens int32) (string, error)
}

// GeminiClient is a thin wrapper around the official genai client. Retries
// and timeouts are the caller's concern; this type only does the API call.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

// NewGeminiClient connects to the Gemini API with the given key and model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "gemini:" + g.model }

// Complete implements Completion against the Gemini API.
func (g *GeminiClient) Complete(ctx context.Context, system, user string, temperature float32, maxTokens int32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
		cfg,
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.ErrCompletionTimeout
		}
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrMalformedCompletion
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
