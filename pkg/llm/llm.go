package llm

import "context"

// Options carries per-call generation parameters. Zero values mean
// "use the configured default".
type Options struct {
	Model       string
	Instruction string
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

// Generator is the generation collaborator contract: given a prompt,
// return generated text. Used downstream of context assembly (answer
// generation, LLM-as-judge scoring), never by the placement strategies.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}
