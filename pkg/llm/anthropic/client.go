package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic_sdk "github.com/anthropics/anthropic-sdk-go"
	anthropic_option "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/llm"
)

var errMissingAPIKey = errors.New("missing API key")

const defaultModel = "claude-3-5-haiku-latest"

// messagesService is the slice of the Anthropic SDK the client depends on,
// kept narrow so tests can substitute it.
type messagesService interface {
	New(ctx context.Context, body anthropic_sdk.MessageNewParams, opts ...anthropic_option.RequestOption) (*anthropic_sdk.Message, error)
}

// Client implements llm.Generator over the Anthropic Messages API.
type Client struct {
	messages messagesService
	config   config.Manager
}

// NewClient creates an Anthropic client from configuration. Requires
// ANTHROPIC_API_KEY; honors ANTHROPIC_BASE_URL.
func NewClient(manager config.Manager) (*Client, error) {
	apiKey := strings.TrimSpace(manager.GetStringWithDefault("ANTHROPIC_API_KEY", ""))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: please export ANTHROPIC_API_KEY", errMissingAPIKey)
	}

	opts := []anthropic_option.RequestOption{
		anthropic_option.WithAPIKey(apiKey),
	}
	if baseURL := strings.TrimSpace(manager.GetStringWithDefault("ANTHROPIC_BASE_URL", "")); baseURL != "" {
		opts = append(opts, anthropic_option.WithBaseURL(baseURL))
	}

	client := anthropic_sdk.NewClient(opts...)
	service := client.Messages

	return &Client{messages: &service, config: manager}, nil
}

// Generate produces text for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	modelConfig := c.config.GetModelConfig()

	modelName := opts.Model
	if modelName == "" {
		modelName = c.config.GetStringWithDefault("ANTHROPIC_MODEL", defaultModel)
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = modelConfig.MaxOutputTokens
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	params := anthropic_sdk.MessageNewParams{
		Model:     anthropic_sdk.Model(modelName),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic_sdk.MessageParam{
			anthropic_sdk.NewUserMessage(anthropic_sdk.NewTextBlock(prompt)),
		},
	}

	if opts.Instruction != "" {
		params.System = []anthropic_sdk.TextBlockParam{
			{Text: opts.Instruction},
		}
	}
	if opts.Temperature > 0 {
		params.Temperature = anthropic_sdk.Float(float64(opts.Temperature))
	}
	if opts.TopP > 0 {
		params.TopP = anthropic_sdk.Float(float64(opts.TopP))
	}

	resp, err := c.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	response := strings.TrimSpace(sb.String())
	if response == "" {
		return "", fmt.Errorf("no usable content in response")
	}

	return response, nil
}
