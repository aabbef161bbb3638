package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClient is the contract the chat service talks to. Provider
// identifies the backing service and doubles as the provenance tag on
// successful replies.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, message string) (string, error)
	Provider() string
}

type OpenAICompletionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICompletionClient(apiKey, model string) *OpenAICompletionClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompletionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICompletionClient) Provider() string {
	return "openai-gpt"
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, systemPrompt string, message string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return content, nil
}

// NewCompletionClient creates the configured chat provider.
func NewCompletionClient(provider, apiKey, model string) (CompletionClient, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
