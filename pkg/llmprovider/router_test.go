package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"task-intelligence/pkg/keychain"
	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/ondevice"
)

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.mu.Lock()
			m.infoMessages = append(m.infoMessages, msg)
			m.mu.Unlock()
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.mu.Lock()
			m.warnMessages = append(m.warnMessages, msg)
			m.mu.Unlock()
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warnMessages)
}

func echoRuntime() ondevice.Runtime {
	return ondevice.Func{
		Name: "embedded",
		Fn: func(ctx context.Context, prompt, systemPrompt string) (string, error) {
			return "on-device: " + prompt, nil
		},
	}
}

type fixture struct {
	settings *kvstore.Memory
	secrets  *keychain.Memory
	logger   *mockLogger
	router   *Router
}

func newFixture(t *testing.T, runtime ondevice.Runtime) *fixture {
	t.Helper()
	f := &fixture{
		settings: kvstore.NewMemory(),
		secrets:  keychain.NewMemory(),
		logger:   &mockLogger{},
	}
	f.router = NewRouter(context.Background(), f.settings, f.secrets, NewFactory(0, runtime), f.logger)
	return f
}

func TestSetActive_UnavailableRevertsToDefault(t *testing.T) {
	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{"unconfigured ollama", ProviderOllama},
		{"unconfigured responses", ProviderResponses},
		{"unknown id", "mystery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.router.SetActive(ctx, tt.id); got != DefaultProviderID {
				t.Errorf("SetActive(%q) = %q, want %q", tt.id, got, DefaultProviderID)
			}
			if f.router.ActiveProviderID() != DefaultProviderID {
				t.Errorf("active = %q", f.router.ActiveProviderID())
			}
		})
	}
}

func TestSetActive_PersistsAndRestores(t *testing.T) {
	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	err := f.router.Configure(ctx, Configuration{Endpoint: "http://127.0.0.1:11434", ModelID: "llama3"}, ProviderOllama)
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if got := f.router.SetActive(ctx, ProviderOllama); got != ProviderOllama {
		t.Fatalf("SetActive() = %q", got)
	}

	restored := NewRouter(ctx, f.settings, f.secrets, NewFactory(0, echoRuntime()), &mockLogger{})
	if restored.ActiveProviderID() != ProviderOllama {
		t.Errorf("restored active = %q, want %q", restored.ActiveProviderID(), ProviderOllama)
	}
}

func TestNewRouter_StoredSelectionNoLongerAvailable(t *testing.T) {
	settings := kvstore.NewMemory()
	settings.Set(context.Background(), settingsKeyActive, ProviderResponses)

	logger := &mockLogger{}
	r := NewRouter(context.Background(), settings, keychain.NewMemory(), NewFactory(0, nil), logger)
	if r.ActiveProviderID() != DefaultProviderID {
		t.Errorf("active = %q, want default", r.ActiveProviderID())
	}
	if logger.warnCount() == 0 {
		t.Error("expected a warning about the stale selection")
	}
}

func TestAvailableProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing usable without runtime or configuration", func(t *testing.T) {
		f := newFixture(t, nil)
		if got := f.router.AvailableProviders(ctx); len(got) != 0 {
			t.Errorf("expected none, got %v", got)
		}
	})

	t.Run("configured networked providers appear", func(t *testing.T) {
		f := newFixture(t, echoRuntime())
		f.router.Configure(ctx, Configuration{Endpoint: "https://api.example.com/v1/responses", ModelID: "m", Credential: "k"}, ProviderResponses)

		got := f.router.AvailableProviders(ctx)
		if len(got) != 2 || got[0].ID != ProviderOnDevice || got[1].ID != ProviderResponses {
			t.Errorf("unexpected providers: %+v", got)
		}
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears last error", func(t *testing.T) {
		f := newFixture(t, echoRuntime())
		f.router.setLastErr(errors.New("stale"))

		text, err := f.router.Complete(ctx, "hi", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "on-device: hi" {
			t.Errorf("text = %q", text)
		}
		if f.router.LastError() != nil {
			t.Errorf("LastError = %v, want nil", f.router.LastError())
		}
	})

	t.Run("failure publishes last error", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.router.Complete(ctx, "hi", "")
		if !errors.Is(err, ErrModelUnavailable) {
			t.Fatalf("expected ErrModelUnavailable, got %v", err)
		}
		if !errors.Is(f.router.LastError(), ErrModelUnavailable) {
			t.Errorf("LastError = %v", f.router.LastError())
		}
		if f.logger.warnCount() != 1 {
			t.Errorf("expected 1 warning, got %d", f.logger.warnCount())
		}
	})

	t.Run("active provider becoming unusable falls back to default", func(t *testing.T) {
		f := newFixture(t, echoRuntime())
		f.router.Configure(ctx, Configuration{Endpoint: "http://127.0.0.1:11434", ModelID: "llama3"}, ProviderOllama)
		f.router.SetActive(ctx, ProviderOllama)

		f.router.Configure(ctx, Configuration{Endpoint: "http://127.0.0.1:11434"}, ProviderOllama)

		text, err := f.router.Complete(ctx, "hi", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "on-device: hi" {
			t.Errorf("expected default provider to answer, got %q", text)
		}
	})

	t.Run("no cross provider retry after a failure", func(t *testing.T) {
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer ts.Close()

		f := newFixture(t, echoRuntime())
		f.router.Configure(ctx, Configuration{Endpoint: ts.URL, ModelID: "m", Credential: "k"}, ProviderResponses)
		f.router.SetActive(ctx, ProviderResponses)

		_, err := f.router.Complete(ctx, "hi", "")
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
		if calls != 1 {
			t.Errorf("expected exactly 1 call, got %d", calls)
		}
	})

	t.Run("cancellation has no side effects", func(t *testing.T) {
		f := newFixture(t, echoRuntime())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.router.Complete(cctx, "hi", "")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if f.router.LastError() != nil {
			t.Errorf("LastError = %v, want nil", f.router.LastError())
		}
		if f.logger.warnCount() != 0 {
			t.Errorf("expected no warnings, got %d", f.logger.warnCount())
		}
	})
}

func TestComplete_ConcurrentCallsLeaveNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)

	f := newFixture(t, echoRuntime())
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 16; i++ {
		prompt := fmt.Sprintf("p%d", i)
		g.Go(func() error {
			text, err := f.router.Complete(ctx, prompt, "")
			if err != nil {
				return err
			}
			if text != "on-device: "+prompt {
				return fmt.Errorf("unexpected text %q", text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigure_CredentialStoredSeparately(t *testing.T) {
	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	err := f.router.Configure(ctx, Configuration{
		Endpoint:   "https://api.example.com/v1/responses",
		ModelID:    "m",
		Credential: "sk-secret",
	}, ProviderResponses)
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	var raw map[string]any
	if err := f.settings.Get(ctx, settingsKeyPrefix+ProviderResponses, &raw); err != nil {
		t.Fatalf("settings Get error = %v", err)
	}
	for k, v := range raw {
		if v == "sk-secret" {
			t.Errorf("credential leaked into settings under %q", k)
		}
	}
	if raw["credential_ref"] != ProviderResponses {
		t.Errorf("credential_ref = %v", raw["credential_ref"])
	}
	if secret, _ := f.secrets.Get(ProviderResponses); secret != "sk-secret" {
		t.Errorf("keychain secret = %q", secret)
	}

	t.Run("empty credential keeps the stored one", func(t *testing.T) {
		err := f.router.Configure(ctx, Configuration{Endpoint: "https://api.example.com/v1/responses", ModelID: "m2"}, ProviderResponses)
		if err != nil {
			t.Fatalf("Configure() error = %v", err)
		}
		cfg := f.router.Configuration(ctx, ProviderResponses)
		if cfg.Credential != "sk-secret" || cfg.ModelID != "m2" {
			t.Errorf("unexpected configuration: %+v", cfg)
		}
	})
}

func TestConfigure_Validation(t *testing.T) {
	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	if err := f.router.Configure(ctx, Configuration{}, "mystery"); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
	err := f.router.Configure(ctx, Configuration{Endpoint: "not a url", ModelID: "m"}, ProviderOllama)
	if !errors.Is(err, ErrInvalidEndpoint) {
		t.Errorf("expected ErrInvalidEndpoint, got %v", err)
	}
	if kind, ok := KindOf(err); !ok || kind != KindInvalidEndpoint {
		t.Errorf("KindOf = %v, %v", kind, ok)
	}
}

func TestRemoveProvider(t *testing.T) {
	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	f.router.Configure(ctx, Configuration{Endpoint: "http://127.0.0.1:11434", ModelID: "llama3", Credential: "tok"}, ProviderOllama)
	f.router.SetActive(ctx, ProviderOllama)

	if err := f.router.RemoveProvider(ctx, ProviderOllama); err != nil {
		t.Fatalf("RemoveProvider() error = %v", err)
	}
	if f.router.ActiveProviderID() != DefaultProviderID {
		t.Errorf("active = %q", f.router.ActiveProviderID())
	}
	if _, err := f.secrets.Get(ProviderOllama); !errors.Is(err, keychain.ErrNotFound) {
		t.Errorf("credential still present: %v", err)
	}
	var cfg Configuration
	if err := f.settings.Get(ctx, settingsKeyPrefix+ProviderOllama, &cfg); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("configuration still present: %v", err)
	}
	var active string
	f.settings.Get(ctx, settingsKeyActive, &active)
	if active != DefaultProviderID {
		t.Errorf("persisted active = %q", active)
	}
}

func TestTestConnection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"output":[{"type":"message","content":[{"type":"output_text","text":"OK"}]}]}`))
	}))
	defer ts.Close()

	f := newFixture(t, echoRuntime())
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{"pass", Configuration{ProviderID: ProviderResponses, Endpoint: ts.URL, ModelID: "m", Credential: "good"}, nil},
		{"bad credential", Configuration{ProviderID: ProviderResponses, Endpoint: ts.URL, ModelID: "m", Credential: "bad"}, ErrNoCredential},
		{"missing model", Configuration{ProviderID: ProviderResponses, Endpoint: ts.URL}, ErrInvalidEndpoint},
		{"unknown provider", Configuration{ProviderID: "mystery"}, ErrUnknownProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.router.TestConnection(ctx, tt.cfg)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if len(f.router.AvailableProviders(ctx)) != 1 {
		t.Error("TestConnection must not persist configuration")
	}
}
