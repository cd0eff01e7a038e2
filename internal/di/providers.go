package di

import (
	"context"
	"fmt"

	"github.com/contextpack/contextpack/pkg/config"
	"github.com/contextpack/contextpack/pkg/embed"
	"github.com/contextpack/contextpack/pkg/events"
	"github.com/contextpack/contextpack/pkg/llm"
	"github.com/contextpack/contextpack/pkg/llm/anthropic"
	"github.com/contextpack/contextpack/pkg/llm/gemini"
	"github.com/contextpack/contextpack/pkg/logging"
	"github.com/contextpack/contextpack/pkg/tokens"
)

// Shared event bus instance
var eventBus = events.NewEventBus()

// Wire providers for the event bus system

func ProvideEventBus() events.EventBus {
	return eventBus
}

func ProvidePublisher() events.Publisher {
	return eventBus
}

func ProvideSubscriber() events.Subscriber {
	return eventBus
}

// ShutdownEventBus drains the shared bus so queued events reach their
// subscribers before a short-lived CLI process exits.
func ShutdownEventBus() {
	if bus, ok := eventBus.(*events.InMemoryBus); ok {
		bus.Shutdown()
	}
}

// ProvideConfigManager provides a configuration manager
func ProvideConfigManager() config.Manager {
	return config.NewManager()
}

// ProvideLogger provides the process logger. It stays silent unless debug
// logging is enabled through the environment.
func ProvideLogger() logging.Logger {
	return logging.NewFileLoggerFromEnv("contextpack.log")
}

// ProvideCounter provides the token counter for the configured encoding.
func ProvideCounter() (tokens.Counter, error) {
	model := ProvideConfigManager().GetModelConfig()
	return tokens.NewCounter(model.Encoding)
}

// ProvideEmbedder provides the embedding backend selected by
// CONTEXTPACK_EMBEDDER: "openai" (default), "gemini", or "none". With
// "none" a nil embedder is returned and only unranked placement works.
func ProvideEmbedder() (embed.Embedder, error) {
	manager := ProvideConfigManager()
	backend := manager.GetStringWithDefault("CONTEXTPACK_EMBEDDER", "openai")

	switch backend {
	case "none":
		return nil, nil
	case "openai":
		return embed.NewOpenAIEmbedder(manager)
	case "gemini":
		return embed.NewGeminiEmbedder(context.Background(), manager)
	default:
		return nil, fmt.Errorf("unknown embedder backend %q", backend)
	}
}

// ProvideGenerator provides the answer generator selected by
// CONTEXTPACK_GENERATOR: "gemini" (default) or "anthropic".
func ProvideGenerator() (llm.Generator, error) {
	manager := ProvideConfigManager()
	backend := manager.GetStringWithDefault("CONTEXTPACK_GENERATOR", "gemini")

	switch backend {
	case "gemini":
		return gemini.NewClient(context.Background(), manager)
	case "anthropic":
		return anthropic.NewClient(manager)
	default:
		return nil, fmt.Errorf("unknown generator backend %q", backend)
	}
}
