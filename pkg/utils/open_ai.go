package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextClient implements GenerativeClientInterface against the OpenAI
// chat completions API. Unlike Gemini there is a single configured model, so
// no candidate probing is needed.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) (*OpenAITextClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *OpenAITextClient) Generate(ctx context.Context, prompt string) (GenerationResult, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return TextResult{}, nil
	}
	return TextResult{Text: resp.Choices[0].Message.Content}, nil
}

func (c *OpenAITextClient) Close() error {
	return nil
}

// NewGenerativeClient is the provider factory: "gemini" (default) or "openai".
func NewGenerativeClient(ctx context.Context, provider, apiKey, model string) (GenerativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model)
	case "gemini", "":
		var candidates []string
		if model != "" {
			candidates = []string{model}
		}
		return NewGeminiTextClient(ctx, apiKey, candidates)
	default:
		return nil, fmt.Errorf("unsupported generative provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
