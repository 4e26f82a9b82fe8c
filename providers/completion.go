// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package providers

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Completion wraps the chat completion API used to produce short free-text
// position labels. Prompt construction and validation live at the handler;
// this type only ships the request.
type Completion struct {
	client *openai.Client
	model  string
}

func NewCompletion(apiKey, model string) *Completion {
	return &Completion{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewCompletionWithConfig exists for tests that point the client at a fake
// server via openai.ClientConfig.BaseURL.
func NewCompletionWithConfig(cfg openai.ClientConfig, model string) *Completion {
	return &Completion{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends a single-user-message chat completion and returns the
// trimmed text of the first choice.
func (c *Completion) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "No content available", nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "No content available", nil
	}
	return text, nil
}
