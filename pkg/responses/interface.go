package responses

import "context"

// IResponses is a client for "prompt in, text out" APIs that speak the
// `{model, input}` -> `{output:[...]}` wire format.
// Implementations are safe for concurrent use.
type IResponses interface {
	// Create sends the prompt (and optional system prompt) and returns the concatenated output text
	Create(ctx context.Context, prompt, systemPrompt string) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IResponses, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newResponsesImpl(cfg), nil
}
