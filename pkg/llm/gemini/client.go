package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/llm"
)

var errMissingAPIKey = errors.New("missing API key")

// Client implements llm.Generator over the Gemini API.
type Client struct {
	client *genai.Client
	config config.Manager

	// Test seam: when set, replaces the API call.
	callGenerateContentFn func(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient creates a Gemini client from configuration. Requires
// GEMINI_API_KEY (or GOOGLE_API_KEY).
func NewClient(ctx context.Context, manager config.Manager) (*Client, error) {
	apiKey := strings.TrimSpace(manager.GetStringWithDefault("GEMINI_API_KEY", ""))
	if apiKey == "" {
		apiKey = strings.TrimSpace(manager.GetStringWithDefault("GOOGLE_API_KEY", ""))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: please export GEMINI_API_KEY or GOOGLE_API_KEY", errMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, config: manager}, nil
}

// Generate produces text for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	modelConfig := c.config.GetModelConfig()

	modelName := opts.Model
	if modelName == "" {
		modelName = modelConfig.GenerationModel
	}

	cfg := &genai.GenerateContentConfig{}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = modelConfig.MaxOutputTokens
	}
	cfg.MaxOutputTokens = maxTokens

	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = modelConfig.Temperature
	}
	cfg.Temperature = genai.Ptr(temperature)

	topP := opts.TopP
	if topP <= 0 {
		topP = modelConfig.TopP
	}
	cfg.TopP = genai.Ptr(topP)

	if opts.Instruction != "" {
		systemParts := []*genai.Part{genai.NewPartFromText(opts.Instruction)}
		cfg.SystemInstruction = genai.NewContentFromParts(systemParts, genai.RoleUser)
	}

	result, err := c.invokeGenerateContent(ctx, modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}
	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("no content in response candidate")
	}

	response := joinTextParts(candidate.Content)
	if response == "" {
		return "", fmt.Errorf("no usable content in response candidates")
	}

	return response, nil
}

func (c *Client) invokeGenerateContent(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if c.callGenerateContentFn != nil {
		return c.callGenerateContentFn(ctx, modelName, contents, cfg)
	}
	return c.client.Models.GenerateContent(ctx, modelName, contents, cfg)
}

// joinTextParts concatenates the text parts of a response, skipping
// thought parts.
func joinTextParts(content *genai.Content) string {
	var parts []string
	for _, part := range content.Parts {
		if part.Text != "" && !part.Thought {
			parts = append(parts, part.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
