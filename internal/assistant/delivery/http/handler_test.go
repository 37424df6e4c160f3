package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"task-intelligence/config"
	"task-intelligence/internal/assistant"
	"task-intelligence/internal/bootstrap"
	"task-intelligence/internal/middleware"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/ondevice"
	pkgSqlite "task-intelligence/pkg/sqlite"
)

type scripted struct {
	mu    sync.Mutex
	reply string
	err   error
}

func (s *scripted) set(reply string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply, s.err = reply, err
}

func (s *scripted) generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reply, s.err
}

type apiResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, *scripted) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rt := &scripted{}
	cfg := &config.Config{
		Storage:  config.StorageConfig{SQLitePath: pkgSqlite.MemoryPath},
		Keychain: config.KeychainConfig{Disabled: true},
	}
	stack, err := bootstrap.Build(context.Background(), cfg, log.NewNop(), ondevice.Func{Name: "test", Fn: rt.generate})
	if err != nil {
		t.Fatalf("bootstrap.Build() error = %v", err)
	}
	t.Cleanup(func() { stack.Close() })

	r := gin.New()
	h := New(log.NewNop(), stack.UseCase)
	RegisterRoutes(r.Group("/api/v1/ai"), h, middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: -1}))
	return r, rt
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, apiResp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
	return out
}

func TestEstimate(t *testing.T) {
	r, rt := setup(t)

	t.Run("Success", func(t *testing.T) {
		rt.set(`{"estimated_minutes": 45, "confidence": "high", "reasoning": "two drafts"}`, nil)
		code, resp := do(t, r, http.MethodPost, "/api/v1/ai/estimate", map[string]string{"title": "Write report"})
		if code != http.StatusOK {
			t.Fatalf("status = %d, body = %+v", code, resp)
		}
		got := decode[estimateResp](t, resp.Data)
		if !got.Suggested || got.Minutes != 45 || got.Confidence != "high" {
			t.Errorf("unexpected estimate: %+v", got)
		}
	})

	t.Run("Missing title fails binding", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/ai/estimate", map[string]string{"notes": "x"})
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})

	t.Run("Blank title", func(t *testing.T) {
		code, resp := do(t, r, http.MethodPost, "/api/v1/ai/estimate", map[string]string{"title": "   "})
		if code != http.StatusBadRequest || resp.ErrorCode != 110001 {
			t.Errorf("got %d/%d, want 400/110001", code, resp.ErrorCode)
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		code, _ := do(t, r, http.MethodPost, "/api/v1/ai/estimate", "{")
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
	})
}

func TestOrder(t *testing.T) {
	r, rt := setup(t)

	t.Run("Reordered", func(t *testing.T) {
		rt.set(`{"order": [2, 1], "reasoning": "due first"}`, nil)
		body := map[string]any{"tasks": []map[string]any{{"title": "Later"}, {"title": "Sooner"}}}
		code, resp := do(t, r, http.MethodPost, "/api/v1/ai/order", body)
		if code != http.StatusOK {
			t.Fatalf("status = %d, body = %+v", code, resp)
		}
		got := decode[orderResp](t, resp.Data)
		if len(got.Tasks) != 2 || got.Tasks[0].Title != "Sooner" || got.Tasks[0].Position != 1 {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("Too many tasks", func(t *testing.T) {
		tasks := make([]map[string]any, assistant.MaxOrderTasks+1)
		for i := range tasks {
			tasks[i] = map[string]any{"title": fmt.Sprintf("t%d", i)}
		}
		code, resp := do(t, r, http.MethodPost, "/api/v1/ai/order", map[string]any{"tasks": tasks})
		if code != http.StatusBadRequest || resp.ErrorCode != 110003 {
			t.Errorf("got %d/%d, want 400/110003", code, resp.ErrorCode)
		}
	})
}

func TestAnalyze_TaskNotFound(t *testing.T) {
	r, _ := setup(t)

	code, resp := do(t, r, http.MethodPost, "/api/v1/ai/analyze", map[string]string{"task_id": "missing"})
	if code != http.StatusNotFound || resp.ErrorCode != 110006 {
		t.Errorf("got %d/%d, want 404/110006", code, resp.ErrorCode)
	}
}

func TestComplete(t *testing.T) {
	r, rt := setup(t)

	rt.set("hello", nil)
	code, resp := do(t, r, http.MethodPost, "/api/v1/ai/complete", map[string]string{"prompt": "hi"})
	if code != http.StatusOK || decode[completeResp](t, resp.Data).Text != "hello" {
		t.Errorf("got %d %s", code, resp.Data)
	}

	rt.set("", errors.New("runtime crashed"))
	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/complete", map[string]string{"prompt": "hi"})
	if code != http.StatusBadGateway || resp.ErrorCode != 120008 {
		t.Errorf("got %d/%d, want 502/120008", code, resp.ErrorCode)
	}
}

func TestProviders(t *testing.T) {
	r, _ := setup(t)

	code, resp := do(t, r, http.MethodGet, "/api/v1/ai/providers", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if got := decode[providersResp](t, resp.Data); got.Active != llmprovider.ProviderOnDevice || len(got.Providers) != 3 {
		t.Errorf("unexpected providers: %+v", got)
	}

	code, resp = do(t, r, http.MethodPut, "/api/v1/ai/providers/nope", map[string]string{"model_id": "m"})
	if code != http.StatusNotFound || resp.ErrorCode != 120001 {
		t.Errorf("unknown provider: got %d/%d", code, resp.ErrorCode)
	}

	code, resp = do(t, r, http.MethodPut, "/api/v1/ai/providers/ollama", map[string]string{"endpoint": "ftp://x", "model_id": "m"})
	if code != http.StatusBadRequest || resp.ErrorCode != 120002 {
		t.Errorf("invalid endpoint: got %d/%d", code, resp.ErrorCode)
	}

	code, _ = do(t, r, http.MethodPut, "/api/v1/ai/providers/ollama", map[string]string{"endpoint": "http://127.0.0.1:11434", "model_id": "llama3.2"})
	if code != http.StatusOK {
		t.Fatalf("configure: status = %d", code)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/providers/ollama/activate", nil)
	if got := decode[activateResp](t, resp.Data); code != http.StatusOK || got.Active != "ollama" || got.Reverted {
		t.Errorf("activate ollama: %d %+v", code, got)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/providers/responses/activate", nil)
	if got := decode[activateResp](t, resp.Data); code != http.StatusOK || !got.Reverted || got.Active != llmprovider.DefaultProviderID {
		t.Errorf("activate responses: %d %+v", code, got)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/providers/test", map[string]string{"provider_id": "responses", "endpoint": "https://api.example.com/v1/responses", "model_id": "m"})
	if code != http.StatusBadRequest || resp.ErrorCode != 120003 {
		t.Errorf("test without credential: got %d/%d, want 400/120003", code, resp.ErrorCode)
	}

	code, resp = do(t, r, http.MethodGet, "/api/v1/ai/providers/nope/models", nil)
	if got := decode[modelsResp](t, resp.Data); code != http.StatusOK || len(got.Models) != 0 {
		t.Errorf("models of unknown provider: %d %+v", code, got)
	}

	code, _ = do(t, r, http.MethodDelete, "/api/v1/ai/providers/ollama", nil)
	if code != http.StatusOK {
		t.Errorf("remove: status = %d", code)
	}
}

func TestLearning(t *testing.T) {
	r, _ := setup(t)

	code, resp := do(t, r, http.MethodPost, "/api/v1/ai/corrections", map[string]string{"field": "colour", "choice": "red"})
	if code != http.StatusBadRequest || resp.ErrorCode != 110004 {
		t.Errorf("invalid field: got %d/%d", code, resp.ErrorCode)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/corrections", map[string]string{
		"field": "priority", "original": "low", "choice": "high", "source_text": "Pay rent",
	})
	if got := decode[recordedResp](t, resp.Data); code != http.StatusOK || !got.Recorded {
		t.Errorf("correction: %d %+v", code, got)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/corrections", map[string]string{
		"field": "priority", "original": "high", "choice": "high",
	})
	if got := decode[recordedResp](t, resp.Data); code != http.StatusOK || got.Recorded {
		t.Errorf("no-op correction: %d %+v", code, got)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/ai/duration-accuracy", map[string]any{"category": "work", "estimated_minutes": 30, "actual_minutes": 45})
	if code != http.StatusOK {
		t.Errorf("duration accuracy: status = %d", code)
	}
	code, _ = do(t, r, http.MethodPost, "/api/v1/ai/duration-accuracy", map[string]any{"estimated_minutes": 0, "actual_minutes": 45})
	if code != http.StatusBadRequest {
		t.Errorf("zero estimate: status = %d, want 400", code)
	}

	for range 2 {
		do(t, r, http.MethodPost, "/api/v1/ai/impressions", nil)
	}

	code, resp = do(t, r, http.MethodGet, "/api/v1/ai/correction-rate?days=7", nil)
	if got := decode[correctionRateResp](t, resp.Data); code != http.StatusOK || got.Days != 7 || got.Rate != 0.5 {
		t.Errorf("correction rate: %d %+v", code, got)
	}
	code, _ = do(t, r, http.MethodGet, "/api/v1/ai/correction-rate?days=abc", nil)
	if code != http.StatusBadRequest {
		t.Errorf("bad days: status = %d, want 400", code)
	}

	code, resp = do(t, r, http.MethodPost, "/api/v1/ai/completions", map[string]any{
		"task":         map[string]any{"title": "Gym", "category": "health"},
		"started_at":   "2026-04-06T07:00:00Z",
		"completed_at": "2026-04-06T07:45:00Z",
	})
	completion := decode[struct {
		Minutes     int    `json:"minutes"`
		CompletedAt string `json:"completed_at"`
	}](t, resp.Data)
	if code != http.StatusOK || completion.Minutes != 45 || completion.CompletedAt == "" {
		t.Errorf("completion: %d %+v", code, completion)
	}

	code, resp = do(t, r, http.MethodGet, "/api/v1/ai/stats", nil)
	got := decode[statsResp](t, resp.Data)
	if code != http.StatusOK || got.Corrections != 1 || got.DurationAccuracy != 1 || got.Impressions != 2 || got.CompletionCount != 1 {
		t.Errorf("stats: %d %+v", code, got)
	}

	code, _ = do(t, r, http.MethodDelete, "/api/v1/ai/learning", nil)
	if code != http.StatusOK {
		t.Fatalf("reset: status = %d", code)
	}
	_, resp = do(t, r, http.MethodGet, "/api/v1/ai/stats", nil)
	if got := decode[statsResp](t, resp.Data); got.Corrections != 0 || got.CompletionCount != 0 {
		t.Errorf("stats after reset: %+v", got)
	}
}

func TestMapError(t *testing.T) {
	h := &handler{l: log.NewNop()}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty title", assistant.ErrEmptyTitle, http.StatusBadRequest},
		{"unknown provider", fmt.Errorf("wrap: %w", llmprovider.ErrUnknownProvider), http.StatusNotFound},
		{"cancelled", context.Canceled, 499},
		{"rate limited", &llmprovider.ProviderError{Kind: llmprovider.KindRateLimited}, http.StatusServiceUnavailable},
		{"model unavailable", &llmprovider.ProviderError{Kind: llmprovider.KindModelUnavailable}, http.StatusServiceUnavailable},
		{"no credential", &llmprovider.ProviderError{Kind: llmprovider.KindNoCredential}, http.StatusBadRequest},
		{"transport", &llmprovider.ProviderError{Kind: llmprovider.KindTransport}, http.StatusBadGateway},
		{"malformed", &llmprovider.ProviderError{Kind: llmprovider.KindMalformedResponse}, http.StatusBadGateway},
		{"api", &llmprovider.ProviderError{Kind: llmprovider.KindAPI}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := h.mapError(tt.err)
			if mapped == nil {
				t.Fatal("expected mapping")
			}
			if !strings.Contains(fmt.Sprintf("%T", mapped), "HTTPError") {
				t.Fatalf("unexpected type %T", mapped)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			h.fail(c, "op", tt.err)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}

	if h.mapError(errors.New("boom")) != nil {
		t.Error("unknown errors must map to nil")
	}
}
