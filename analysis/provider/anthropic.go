package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens bounds the response; the API requires a limit.
const anthropicMaxTokens = 4096

// AnthropicClient implements Model with the Anthropic Messages API.
type AnthropicClient struct {
	settings Settings
}

func NewAnthropic(s Settings) *AnthropicClient {
	return &AnthropicClient{settings: s}
}

func (a *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(a.settings.APIKey) == "" {
		return "", missingKeyError(Anthropic)
	}
	if strings.TrimSpace(a.settings.Model) == "" {
		return "", errors.New("anthropic: model is empty")
	}

	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(a.settings.APIKey),
		anthropicoption.WithMaxRetries(0),
	}
	if a.settings.BaseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(a.settings.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.settings.Model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("anthropic: response has no text content")
	}
	return b.String(), nil
}
