package responses

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// ItemTypeMessage marks a message item in both the request input and the response output
	ItemTypeMessage = "message"

	// ContentTypeOutputText marks a text block inside an output message
	ContentTypeOutputText = "output_text"

	RoleSystem = "system"
	RoleUser   = "user"

	// responsesSuffix is trimmed from the endpoint to find the API root for model listing
	responsesSuffix = "/responses"
)
