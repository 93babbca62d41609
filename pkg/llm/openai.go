package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompatibleClient talks to any server exposing the OpenAI chat
// completions API. Ollama serves one under /v1, which is how the local
// runtime is reached.
type OpenAICompatibleClient struct {
	client *openai.Client
}

func NewOpenAICompatibleClient(apiKey, baseURL string) *OpenAICompatibleClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAICompatibleClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAICompatibleClient) GenerateText(ctx context.Context, modelID, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion with %s: %w", modelID, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
