package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func chdirTemp(t *testing.T, yaml string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	t.Chdir(dir)
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.LLM.RequestTimeout != 60*time.Second {
		t.Errorf("request timeout = %v", cfg.LLM.RequestTimeout)
	}
	if cfg.Learning.MaxAgeDays != 90 || cfg.Learning.CorrectionCapacity != 100 {
		t.Errorf("learning = %+v", cfg.Learning)
	}
	if len(cfg.LLM.Providers) != 0 {
		t.Errorf("expected no seed providers, got %d", len(cfg.LLM.Providers))
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("TI_TEST_KEY", "sk-from-env")
	chdirTemp(t, `
environment:
  name: production
http_server:
  port: 9090
storage:
  sqlite_path: ":memory:"
llm:
  default_provider: ollama
  request_timeout: 5s
  providers:
    - id: ollama
      endpoint: http://127.0.0.1:11434
      model: llama3.2
    - id: responses
      endpoint: https://api.example.com/v1/responses
      model: small
      credential: ${TI_TEST_KEY}
rate_limit:
  requests_per_min: 10
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment.Name != "production" || cfg.HTTPServer.Port != 9090 {
		t.Errorf("unexpected server config: %+v %+v", cfg.Environment, cfg.HTTPServer)
	}
	if cfg.Storage.SQLitePath != ":memory:" {
		t.Errorf("sqlite path = %q", cfg.Storage.SQLitePath)
	}
	if cfg.LLM.DefaultProvider != "ollama" || cfg.LLM.RequestTimeout != 5*time.Second {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("providers = %d, want 2", len(cfg.LLM.Providers))
	}
	if got := cfg.LLM.Providers[1].Credential; got != "sk-from-env" {
		t.Errorf("credential = %q, want expanded env value", got)
	}
	if cfg.RateLimit.RequestsPerMin != 10 {
		t.Errorf("rate limit = %d", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoad_ProviderWithoutID(t *testing.T) {
	chdirTemp(t, `
llm:
  providers:
    - endpoint: http://127.0.0.1:11434
`)

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TI_EXPAND", "value")

	tests := map[string]string{
		"":               "",
		"plain":          "plain",
		"${TI_EXPAND}":   "value",
		"${TI_MISSING_}": "",
	}
	for in, want := range tests {
		if got := expandEnvVar(in); got != want {
			t.Errorf("expandEnvVar(%q) = %q, want %q", in, got, want)
		}
	}
}
