package ollama

import "time"

const (
	// DefaultTimeout is generous because local inference can be slow on first load
	DefaultTimeout = 5 * time.Minute

	// ListTimeout bounds model discovery
	ListTimeout = 5 * time.Second

	// openAICompatPath is where Ollama-style servers expose the generic model listing
	openAICompatPath = "/v1"
)
