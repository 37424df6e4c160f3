package responses

import (
	"context"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ListModels queries the generic `/models` listing under baseURL.
// Discovery is advisory: any failure yields an empty list.
func ListModels(ctx context.Context, baseURL, apiKey string, httpClient *http.Client) []string {
	if baseURL == "" {
		return []string{}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		opts = append(opts, option.WithHeaderDel("Authorization"))
	}
	client := openai.NewClient(opts...)

	page, err := client.Models.List(ctx)
	if err != nil || page == nil {
		return []string{}
	}

	models := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		if m.ID != "" {
			models = append(models, m.ID)
		}
	}
	return models
}

// BaseURL derives the API root from a responses endpoint, e.g.
// "https://api.example.com/v1/responses" -> "https://api.example.com/v1".
func BaseURL(endpoint string) string {
	return strings.TrimSuffix(strings.TrimRight(endpoint, "/"), responsesSuffix)
}
