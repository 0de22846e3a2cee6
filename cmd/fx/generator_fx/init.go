package generator_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"travelr/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient)

// GeneratorConfig holds configuration for the generative text backend.
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerativeClient constructs the one process-wide backend client.
// A missing API key is a configuration error and fatal before any call is
// attempted.
func ProvideGenerativeClient(lc fx.Lifecycle) (utils.GenerativeClientInterface, error) {
	config := getGeneratorConfig()

	log.Printf("Initializing %s generative client", config.Provider)

	client, err := utils.NewGenerativeClient(context.Background(), config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func getGeneratorConfig() GeneratorConfig {
	provider := getEnvWithDefault("GENERATIVE_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider. Get your free API key at https://aistudio.google.com/app/apikey")
		}
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
