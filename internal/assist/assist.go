// Package assist implements the free-text assistant used after a
// completed intake, backed by Google's Gemini API. The assistant is an
// opaque text-in/text-out collaborator: callers show its failures inline
// as if they were the assistant's reply and never abort the session.
package assist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"
)

// Responder generates a reply to a free-form user prompt.
type Responder interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// Config holds the settings needed to build a Gemini-backed Responder.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Instruction string
	Timeout     time.Duration
}

type geminiResponder struct {
	client        *genai.Client
	log           *slog.Logger
	contentConfig *genai.GenerateContentConfig
	modelName     string
	timeout       time.Duration
}

// NewResponder creates a Gemini-backed Responder with the provided
// configuration. Each call is bounded by the configured timeout and made
// exactly once; there is no retry policy.
func NewResponder(ctx context.Context, cfg Config, log *slog.Logger) (Responder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if log == nil {
		log = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	contentConfig := &genai.GenerateContentConfig{
		Temperature: &cfg.Temperature,
	}
	if cfg.Instruction != "" {
		contentConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: cfg.Instruction}},
		}
	}

	logger := log.With("component", "assist")
	logger.Info("Assistant client initialized", "model", cfg.Model)

	return &geminiResponder{
		client:        client,
		log:           logger,
		contentConfig: contentConfig,
		modelName:     cfg.Model,
		timeout:       cfg.Timeout,
	}, nil
}

func (r *geminiResponder) Reply(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := r.client.Models.GenerateContent(ctx, r.modelName, contents, r.contentConfig)
	if err != nil {
		r.log.ErrorContext(ctx, "Gemini reply generation failed", "error", err)
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		reason := fmt.Sprintf("%v", resp.PromptFeedback.BlockReason)
		if resp.PromptFeedback.BlockReasonMessage != "" {
			reason = resp.PromptFeedback.BlockReasonMessage
		}
		r.log.ErrorContext(ctx, "Gemini request blocked", "reason", reason)
		return "", fmt.Errorf("reply blocked by safety filter: %s", reason)
	}

	text := resp.Text()
	if text == "" {
		r.log.WarnContext(ctx, "Gemini response contained no text")
		return "", fmt.Errorf("reply returned empty content")
	}

	return text, nil
}
