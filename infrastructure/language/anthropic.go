package language

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

// AnthropicModel talks to the Anthropic messages API
type AnthropicModel struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicModel creates an Anthropic provider
func NewAnthropicModel(apiKey, model string) *AnthropicModel {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicModel{
		client: &client,
		model:  model,
	}
}

// Complete sends the prompt and returns the raw response text
func (m *AnthropicModel) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemInstruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return responseText, nil
}
