package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used by GPT-4 and GPT-3.5 and is a good general-purpose encoder.
const DefaultEncoding = "cl100k_base"

// TiktokenCounter implements Codec over a tiktoken BPE encoding.
type TiktokenCounter struct {
	encoder  *tiktoken.Tiktoken
	encoding string
}

// NewCounter creates a counter for the named encoding. An empty name
// selects DefaultEncoding.
func NewCounter(encoding string) (*TiktokenCounter, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	encoder, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("get encoding %s: %w", encoding, err)
	}
	return &TiktokenCounter{encoder: encoder, encoding: encoding}, nil
}

// NewCounterForModel creates a counter for a model name, falling back to
// DefaultEncoding when the model is unknown to tiktoken.
func NewCounterForModel(model string) (*TiktokenCounter, error) {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoderFallback, fallbackErr := tiktoken.GetEncoding(DefaultEncoding)
		if fallbackErr != nil {
			return nil, fmt.Errorf("get encoding: %w", fallbackErr)
		}
		return &TiktokenCounter{encoder: encoderFallback, encoding: DefaultEncoding}, nil
	}
	return &TiktokenCounter{encoder: encoder, encoding: model}, nil
}

// Encoding returns the encoding identifier this counter was built with.
func (c *TiktokenCounter) Encoding() string {
	return c.encoding
}

// Count returns the number of tokens in text.
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.encoder.Encode(text, nil, nil))
}

// Encode converts text to a token sequence.
func (c *TiktokenCounter) Encode(text string) []int {
	return c.encoder.Encode(text, nil, nil)
}

// Decode converts a token sequence back to text.
func (c *TiktokenCounter) Decode(tokens []int) string {
	return c.encoder.Decode(tokens)
}
