package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		args   []any
		wantOK bool
		wantKV int
	}{
		{name: "message only", args: []any{"hello"}, wantOK: false},
		{name: "message and pair", args: []any{"call failed", "provider", "ollama"}, wantOK: true, wantKV: 2},
		{name: "two pairs", args: []any{"call failed", "provider", "ollama", "status", 429}, wantOK: true, wantKV: 4},
		{name: "dangling key", args: []any{"msg", "provider"}, wantOK: false},
		{name: "non string key", args: []any{"msg", 1, "x"}, wantOK: false},
		{name: "non string message", args: []any{42, "k", "v"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kv, ok := split(tt.args)
			if ok != tt.wantOK {
				t.Fatalf("split() ok = %v, want %v", ok, tt.wantOK)
			}
			if len(kv) != tt.wantKV {
				t.Errorf("split() kv len = %d, want %d", len(kv), tt.wantKV)
			}
		})
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	ctx := context.Background()
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "error", Mode: "development", Encoding: enc})
		l.Debug(ctx, "hidden", "k", "v")
		l.Infof(ctx, "hidden %d", 1)
	}
	NewNop().Error(ctx, "discarded", "provider", "test")
}
