package utils

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModelCandidates is the prioritized list of Gemini models that support
// generateContent on a free-tier key.
var DefaultModelCandidates = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-pro-latest",
}

// GeminiTextClient implements GenerativeClientInterface against Google's
// Gemini models. Model selection is probed once and cached for the lifetime
// of the client, so only the first request pays the probe latency.
type GeminiTextClient struct {
	client     *genai.Client
	candidates []string

	mu           sync.Mutex
	selected     *genai.GenerativeModel
	selectedName string
}

func NewGeminiTextClient(ctx context.Context, apiKey string, candidates []string) (*GeminiTextClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(candidates) == 0 {
		candidates = DefaultModelCandidates
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client:     client,
		candidates: candidates,
	}, nil
}

// selectModel walks the candidate list in priority order and issues a trivial
// smoke-test call against each. The first model that answers is cached; if
// every candidate fails the last error is surfaced.
func (c *GeminiTextClient) selectModel(ctx context.Context) (*genai.GenerativeModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected != nil {
		return c.selected, nil
	}

	var lastErr error
	for _, name := range c.candidates {
		m := c.client.GenerativeModel(name)
		m.SetTemperature(0.1)
		m.SetTopP(0.5)
		m.SetTopK(20)

		if _, err := m.GenerateContent(ctx, genai.Text("OK")); err != nil {
			lastErr = err
			log.Printf("Candidate model failed: %s: %v", name, err)
			continue
		}

		log.Printf("Selected model: %s", name)
		c.selected = m
		c.selectedName = name
		return m, nil
	}

	return nil, &NoBackendError{LastErr: lastErr}
}

// SelectedModel reports the cached model name, empty until the first
// successful selection.
func (c *GeminiTextClient) SelectedModel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedName
}

func (c *GeminiTextClient) Generate(ctx context.Context, prompt string) (GenerationResult, error) {
	model, err := c.selectModel(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	result := CandidateResult{}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		gc := GenerationCandidate{}
		for _, part := range cand.Content.Parts {
			gc.Parts = append(gc.Parts, fmt.Sprintf("%v", part))
		}
		result.Candidates = append(result.Candidates, gc)
	}

	return result, nil
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}
