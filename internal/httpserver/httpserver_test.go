package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-intelligence/config"
	"task-intelligence/internal/bootstrap"
	"task-intelligence/internal/middleware"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/log"
	pkgSqlite "task-intelligence/pkg/sqlite"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestServer(t *testing.T, env string, mw middleware.Config) *HTTPServer {
	t.Helper()
	return newTestServerWithStorage(t, env, mw, nil)
}

// newTestServerWithStorage pings the stack's own database unless storage is set.
func newTestServerWithStorage(t *testing.T, env string, mw middleware.Config, storage Pinger) *HTTPServer {
	t.Helper()
	stack, err := bootstrap.Build(context.Background(), &config.Config{
		Storage:  config.StorageConfig{SQLitePath: pkgSqlite.MemoryPath},
		Keychain: config.KeychainConfig{Disabled: true},
	}, log.NewNop(), nil)
	if err != nil {
		t.Fatalf("bootstrap.Build() error = %v", err)
	}
	t.Cleanup(func() { stack.Close() })

	if storage == nil {
		storage = stack.Storage()
	}
	srv, err := New(log.NewNop(), Config{
		Storage:     storage,
		Port:        18080,
		Mode:        gin.TestMode,
		Environment: env,
		AssistantUC: stack.UseCase,
		Middleware:  mw,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1}},
		{"missing port", Config{Mode: gin.TestMode}},
		{"missing usecase", Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, "production", middleware.Config{RequestsPerMin: -1})

	for _, path := range []string{"/health", "/ready", "/live", "/api/v1/ai/providers", "/api/v1/ai/stats"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
		})
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data["service"] != ServiceName {
		t.Errorf("service = %q", body.Data["service"])
	}
}

func TestReadyCheck(t *testing.T) {
	type readyBody struct {
		ErrorCode int            `json:"error_code"`
		Data      map[string]any `json:"data"`
	}
	decode := func(t *testing.T, w *httptest.ResponseRecorder) readyBody {
		t.Helper()
		var body readyBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body
	}

	t.Run("storage reachable", func(t *testing.T) {
		srv := newTestServer(t, "development", middleware.Config{RequestsPerMin: -1})

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decode(t, w)
		if body.Data["status"] != statusReady {
			t.Errorf("status = %v", body.Data["status"])
		}
		if body.Data["active_provider"] != llmprovider.DefaultProviderID {
			t.Errorf("active_provider = %v", body.Data["active_provider"])
		}
		// no runtime was given, so the on-device backend cannot serve
		if body.Data["provider_available"] != false {
			t.Errorf("provider_available = %v", body.Data["provider_available"])
		}
	})

	t.Run("storage unreachable", func(t *testing.T) {
		srv := newTestServerWithStorage(t, "development", middleware.Config{RequestsPerMin: -1},
			pingerFunc(func(context.Context) error { return errors.New("database is closed") }))

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", w.Code)
		}
		body := decode(t, w)
		if body.ErrorCode != notReadyCode {
			t.Errorf("error_code = %d, want %d", body.ErrorCode, notReadyCode)
		}
		if body.Data["status"] != statusBlocked || body.Data["storage"] != "unreachable" {
			t.Errorf("data = %v", body.Data)
		}
	})

	t.Run("closed database", func(t *testing.T) {
		stack, err := bootstrap.Build(context.Background(), &config.Config{
			Storage:  config.StorageConfig{SQLitePath: pkgSqlite.MemoryPath},
			Keychain: config.KeychainConfig{Disabled: true},
		}, log.NewNop(), nil)
		if err != nil {
			t.Fatalf("bootstrap.Build() error = %v", err)
		}
		srv := newTestServerWithStorage(t, "development", middleware.Config{RequestsPerMin: -1}, stack.Storage())
		stack.Close()

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}

func TestRoutes_RateLimited(t *testing.T) {
	srv := newTestServer(t, "development", middleware.Config{RequestsPerMin: 1})

	var last int
	for range 3 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/stats", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		srv.Handler().ServeHTTP(w, req)
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", last)
	}

	// system routes are not limited
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, "development", middleware.Config{})
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
