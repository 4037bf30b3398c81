// Package llm parses free-form contra dance notation into figure calls
// using a language model, and fills in the end-formation parameters that
// geometry alone cannot determine.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/schema"
)

// ErrEmptyResponse indicates the model returned no content.
var ErrEmptyResponse = errors.New("empty model response")

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// Completer is the minimal chat-completion surface the parser and resolver
// need. Implementations must be safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// AnthropicCompleter implements Completer on top of langchaingo's
// Anthropic client. The API key is read from ANTHROPIC_API_KEY.
type AnthropicCompleter struct {
	llm *anthropic.LLM
}

// NewAnthropicCompleter creates a completer for the given model. An empty
// model falls back to DefaultModel.
func NewAnthropicCompleter(model string) (*AnthropicCompleter, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := anthropic.New(anthropic.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("llm: create anthropic client: %w", err)
	}
	return &AnthropicCompleter{llm: client}, nil
}

// Complete sends one system + user exchange and returns the text reply.
func (c *AnthropicCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, system),
			llms.TextParts(schema.ChatMessageTypeHuman, prompt),
		},
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}
