package ollama_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-intelligence/pkg/ollama"
)

func TestChat(t *testing.T) {
	var gotAuth string
	var gotReq struct {
		Model    string `json:"model"`
		Stream   *bool  `json:"stream"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"{\"ok\":true}"},"done":true}`))
	}))
	defer ts.Close()

	c, err := ollama.New(ollama.Config{BaseURL: ts.URL, Model: "llama3", APIKey: "secret"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text, err := c.Chat(context.Background(), "estimate", "json only")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "llama3" || gotReq.Stream == nil || *gotReq.Stream {
		t.Errorf("unexpected request: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Content != "estimate" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestChat_EmptyReply(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"llama3","message":{"role":"assistant","content":"  "},"done":true}`))
	}))
	defer ts.Close()

	c, _ := ollama.New(ollama.Config{BaseURL: ts.URL, Model: "llama3"})
	if _, err := c.Chat(context.Background(), "p", ""); !errors.Is(err, ollama.ErrEmptyOutput) {
		t.Fatalf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestListModels(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama3:8b","model":"llama3:8b"},{"name":"qwen3:4b","model":"qwen3:4b"}]}`))
	}))
	defer ts.Close()

	c, _ := ollama.New(ollama.Config{BaseURL: ts.URL})
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 || models[0] != "llama3:8b" {
		t.Errorf("unexpected models: %v", models)
	}
	if c.CompatBaseURL() != ts.URL+"/v1" {
		t.Errorf("CompatBaseURL = %q", c.CompatBaseURL())
	}
}

func TestNew_InvalidEndpoint(t *testing.T) {
	for _, base := range []string{"", "localhost:11434", "ftp://x"} {
		if _, err := ollama.New(ollama.Config{BaseURL: base, Model: "m"}); !errors.Is(err, ollama.ErrInvalidEndpoint) {
			t.Errorf("base %q: expected ErrInvalidEndpoint, got %v", base, err)
		}
	}
}
