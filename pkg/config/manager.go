package config

import (
	"fmt"
	"os"
	"strconv"
)

// BudgetDefaults holds the default token budget configuration for context assembly.
type BudgetDefaults struct {
	MaxTokens int
	Overhead  int
}

// ModelConfig holds the default model configuration for the LLM collaborators.
type ModelConfig struct {
	GenerationModel string
	EmbeddingModel  string
	Encoding        string
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
}

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	RequireString(key string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBoolWithDefault(key string, defaultValue bool) bool
	GetBudgetDefaults() BudgetDefaults
	GetModelConfig() ModelConfig
}

// DefaultManager implements the Manager interface on top of environment variables.
type DefaultManager struct {
}

// NewManager creates a new default config manager
func NewManager() Manager {
	return &DefaultManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *DefaultManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// RequireString gets a configuration value by key, panics if not found
func (m *DefaultManager) RequireString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required configuration key %s not found", key))
	}
	return value
}

// GetInt gets an integer configuration value by key, returns error if not found or invalid
func (m *DefaultManager) GetInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("configuration key %s not found", key)
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value: %s", key, value)
	}
	return intValue, nil
}

// GetIntWithDefault gets an integer configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// GetBoolWithDefault gets a boolean configuration value by key, returns default if not found or invalid
func (m *DefaultManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// GetBudgetDefaults returns the default budget configuration from environment variables or defaults.
// The 50-token overhead mirrors what the assembly strategies reserve for query and instructions.
func (m *DefaultManager) GetBudgetDefaults() BudgetDefaults {
	return BudgetDefaults{
		MaxTokens: m.GetIntWithDefault("CONTEXTPACK_MAX_TOKENS", 4000),
		Overhead:  m.GetIntWithDefault("CONTEXTPACK_OVERHEAD", 50),
	}
}

// GetModelConfig returns the default model configuration from environment variables or defaults
func (m *DefaultManager) GetModelConfig() ModelConfig {
	maxOutputStr := m.GetStringWithDefault("CONTEXTPACK_MAX_OUTPUT_TOKENS", "1024")
	maxOutput, err := strconv.ParseInt(maxOutputStr, 10, 32)
	if err != nil {
		maxOutput = 1024 // fallback to default
	}

	tempStr := m.GetStringWithDefault("CONTEXTPACK_TEMPERATURE", "0.7")
	temperature, err := strconv.ParseFloat(tempStr, 32)
	if err != nil {
		temperature = 0.7 // fallback to default
	}

	topPStr := m.GetStringWithDefault("CONTEXTPACK_TOP_P", "0.9")
	topP, err := strconv.ParseFloat(topPStr, 32)
	if err != nil {
		topP = 0.9 // fallback to default
	}

	return ModelConfig{
		GenerationModel: m.GetStringWithDefault("CONTEXTPACK_GENERATION_MODEL", "gemini-2.0-flash"),
		EmbeddingModel:  m.GetStringWithDefault("CONTEXTPACK_EMBEDDING_MODEL", "text-embedding-3-small"),
		Encoding:        m.GetStringWithDefault("CONTEXTPACK_ENCODING", "cl100k_base"),
		MaxOutputTokens: int32(maxOutput),
		Temperature:     float32(temperature),
		TopP:            float32(topP),
	}
}
