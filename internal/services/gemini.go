package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"google.golang.org/genai"
)

// CompletionOptions carries per-call knobs for the completion service.
// A nil Temperature leaves the service default in place.
type CompletionOptions struct {
	Temperature *float32
}

// CompletionClient is the text-in/text-out boundary to the remote
// generation service. One best-effort call, no caching, no retries.
type CompletionClient interface {
	GenerateText(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

type geminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, modelName string) (CompletionClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements CompletionClient.
func (g *geminiClient) GenerateText(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     opts.Temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", classifyCompletionError(err)
	}

	if resp == nil {
		return "", &CompletionError{
			Kind: CompletionErrorService,
			Err:  fmt.Errorf("no response generated (nil response)"),
		}
	}

	text := resp.Text()
	if text == "" {
		// Content-policy refusals and safety blocks come back as empty
		// candidates rather than transport errors.
		return "", &CompletionError{
			Kind: CompletionErrorService,
			Err:  fmt.Errorf("no text content in response"),
		}
	}

	return text, nil
}

// classifyCompletionError maps a raw client error onto the taxonomy the
// handlers surface to the user.
func classifyCompletionError(err error) *CompletionError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return &CompletionError{Kind: CompletionErrorAuth, Err: err}
		default:
			return &CompletionError{Kind: CompletionErrorService, Err: err}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return &CompletionError{Kind: CompletionErrorNetwork, Err: err}
	}

	if strings.Contains(err.Error(), "API key") {
		return &CompletionError{Kind: CompletionErrorAuth, Err: err}
	}

	return &CompletionError{Kind: CompletionErrorService, Err: err}
}
