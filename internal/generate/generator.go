// Package generate implements the generation-and-persistence workflow: it
// prompts a text generation service for schema-conformant records, excluding
// identities already in storage, and persists the results one record at a
// time, tolerating per-record uniqueness rejections.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"geninv/internal/logger"
)

// SamplingTemperature is used for every generation request. Maximum creative
// variance; uniqueness is enforced by storage, not by the model.
const SamplingTemperature float32 = 1.0

// Request is one generation request at the capability boundary.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
}

// TextGenerator is the generation capability: it turns a prompt into raw
// text expected to contain a JSON array of records. Implementations signal
// failure with an error; they never retry.
type TextGenerator interface {
	GenerateRecords(ctx context.Context, req Request) (string, error)
}

// OpenAIGenerator implements TextGenerator with the OpenAI chat completion API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewOpenAIGenerator creates a generator for the given API key and model.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.WithComponent("generator"),
	}
}

// NewOpenAIGeneratorWithClient creates a generator with an explicit client.
func NewOpenAIGeneratorWithClient(client *openai.Client, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: client,
		model:  model,
		log:    logger.WithComponent("generator"),
	}
}

func (g *OpenAIGenerator) GenerateRecords(ctx context.Context, req Request) (string, error) {
	const op = "GenerateRecords"

	g.log.Debug().
		Str("model", g.model).
		Float32("temperature", req.Temperature).
		Msg("Sending generation request")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: generation request failed: %w", op, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no response choices returned", op)
	}

	g.log.Debug().
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Received generation response")

	return stripCodeFences(resp.Choices[0].Message.Content), nil
}

// stripCodeFences removes a markdown code block wrapper when the model
// returns one around the JSON payload.
func stripCodeFences(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}
