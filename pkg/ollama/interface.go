package ollama

import "context"

// IOllama is a client for a local-network Ollama-compatible server.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat runs one non-streaming chat turn and returns the assistant text
	Chat(ctx context.Context, prompt, systemPrompt string) (string, error)

	// ListModels returns the names of locally installed models
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string

	// CompatBaseURL returns the root of the server's OpenAI-compatible API
	CompatBaseURL() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
