// Package gemini implements llm.Client on top of Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/telemetry"
)

const providerName = "gemini"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Client implements llm.Client. A genai client is created per call because
// the API key may differ between requests.
type Client struct {
	opts []option.ClientOption
}

// NewClient constructs a Gemini client; opts are appended to every genai
// client it creates (endpoint overrides, HTTP clients).
func NewClient(opts ...option.ClientOption) *Client {
	return &Client{opts: opts}
}

// Complete generates text for the given messages.
func (c *Client) Complete(ctx context.Context, in llm.Completion) (string, error) {
	if strings.TrimSpace(in.APIKey) == "" {
		return "", fmt.Errorf("gemini api key is required")
	}
	modelName := strings.TrimSpace(in.Model)
	if modelName == "" {
		modelName = DefaultModel
	}

	opts := append([]option.ClientOption{option.WithAPIKey(in.APIKey)}, c.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	model.SetTemperature(in.Temperature)
	if in.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(in.MaxTokens))
	}

	system, parts := splitMessages(in.Messages)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", mapError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	logUsage(modelName, resp)

	text = strings.TrimSpace(text)
	if text == "" {
		return "", llm.ErrEmptyContent
	}
	return text, nil
}

// splitMessages folds system messages into one instruction and keeps the
// remaining turns as prompt parts in order.
func splitMessages(messages []llm.Message) (string, []genai.Part) {
	var system []string
	var parts []genai.Part
	for _, m := range messages {
		if m.Role == llm.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		parts = append(parts, genai.Text(m.Content))
	}
	return strings.Join(system, "\n\n"), parts
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", llm.ErrEmptyContent
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

func mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = strings.TrimSpace(apiErr.Body)
		}
		return &llm.UpstreamError{Provider: providerName, StatusCode: apiErr.Code, Message: msg}
	}
	return fmt.Errorf("failed to generate content: %w", err)
}

func logUsage(model string, resp *genai.GenerateContentResponse) {
	fields := map[string]any{
		"provider": providerName,
		"model":    model,
	}
	if resp.UsageMetadata != nil {
		fields["prompt_tokens"] = resp.UsageMetadata.PromptTokenCount
		fields["completion_tokens"] = resp.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = resp.UsageMetadata.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)
}

var _ llm.Client = (*Client)(nil)
