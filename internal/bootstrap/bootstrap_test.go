package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intelligence/config"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/ondevice"
	pkgSqlite "task-intelligence/pkg/sqlite"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage:  config.StorageConfig{SQLitePath: pkgSqlite.MemoryPath},
		Keychain: config.KeychainConfig{Disabled: true},
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.LLM.Providers = []config.ProviderConfig{
		{ID: llmprovider.ProviderOllama, Endpoint: "http://127.0.0.1:11434", Model: "llama3.2"},
	}
	cfg.LLM.DefaultProvider = llmprovider.ProviderOllama
	cfg.RateLimit.RequestsPerMin = 30

	stack, err := Build(ctx, cfg, log.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { stack.Close() })

	assert.Equal(t, llmprovider.ProviderOllama, stack.Router.ActiveProviderID())
	assert.Equal(t, "llama3.2", stack.Router.Configuration(ctx, llmprovider.ProviderOllama).ModelID)
	assert.Equal(t, 30, stack.Middleware.RequestsPerMin)
	assert.False(t, stack.UseCase.IsProcessing())
}

func TestBuild_UnavailableDefaultFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.DefaultProvider = llmprovider.ProviderResponses

	stack, err := Build(context.Background(), cfg, log.NewNop(), ondevice.Unsupported{})
	require.NoError(t, err)
	t.Cleanup(func() { stack.Close() })

	assert.Equal(t, llmprovider.DefaultProviderID, stack.Router.ActiveProviderID())
}

func TestBuild_InvalidSeed(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.Providers = []config.ProviderConfig{{ID: "nope"}}

	_, err := Build(context.Background(), cfg, log.NewNop(), nil)
	assert.ErrorIs(t, err, llmprovider.ErrUnknownProvider)
}

func TestSeedProviders_StoredConfigWins(t *testing.T) {
	ctx := context.Background()
	stack, err := Build(ctx, testConfig(), log.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { stack.Close() })

	require.NoError(t, stack.Router.Configure(ctx, llmprovider.Configuration{
		Endpoint: "http://10.0.0.2:11434",
		ModelID:  "stored",
	}, llmprovider.ProviderOllama))

	err = seedProviders(ctx, stack.Router, config.LLMConfig{Providers: []config.ProviderConfig{
		{ID: llmprovider.ProviderOllama, Endpoint: "http://127.0.0.1:11434", Model: "seed"},
	}}, log.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "stored", stack.Router.Configuration(ctx, llmprovider.ProviderOllama).ModelID)
}
