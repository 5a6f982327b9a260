package language

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const systemInstruction = "You are a precise business analyst. Follow the requested output structure exactly."

// OpenAIModel talks to an OpenAI-compatible chat completion endpoint
type OpenAIModel struct {
	chatModel model.ChatModel
}

// NewOpenAIModel creates a provider for an OpenAI-compatible backend.
// BaseURL may be empty for the default endpoint.
func NewOpenAIModel(ctx context.Context, baseURL, apiKey, modelName string) (*OpenAIModel, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat model init: %w", err)
	}

	return &OpenAIModel{chatModel: chatModel}, nil
}

// Complete sends the prompt and returns the raw response text
func (m *OpenAIModel) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemInstruction},
		{Role: schema.User, Content: prompt},
	}

	resp, err := m.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}
