package analyzer

import (
	"fmt"

	"petvault/internal/config"
	"petvault/internal/port"
)

// ProviderFactory creates a CompletionClient from the LLM config.
type ProviderFactory func(cfg *config.LLMConfig) (port.CompletionClient, error)

// registry of provider factories, populated at startup via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClient creates a CompletionClient for cfg.Provider using the registered factory.
func NewClient(cfg *config.LLMConfig) (port.CompletionClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
