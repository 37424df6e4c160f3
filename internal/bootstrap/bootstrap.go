// Package bootstrap wires the storage, provider and learning layers into an
// assistant use case. Both the HTTP server and the aictl CLI start from here.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-intelligence/config"
	"task-intelligence/internal/aicontext"
	"task-intelligence/internal/assistant"
	"task-intelligence/internal/assistant/usecase"
	"task-intelligence/internal/learning"
	"task-intelligence/internal/middleware"
	taskSqlite "task-intelligence/internal/task/repository/sqlite"
	"task-intelligence/pkg/keychain"
	"task-intelligence/pkg/kvstore"
	"task-intelligence/pkg/llmprovider"
	"task-intelligence/pkg/log"
	"task-intelligence/pkg/ondevice"
	pkgSqlite "task-intelligence/pkg/sqlite"
)

// Stack is the assembled engine.
type Stack struct {
	UseCase    assistant.UseCase
	Router     *llmprovider.Router
	Middleware middleware.Config

	db *sql.DB
}

// Storage is the database handle, for readiness probes.
func (s *Stack) Storage() *sql.DB {
	return s.db
}

// Close releases the database.
func (s *Stack) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Build opens storage and assembles the use case. A nil runtime means the
// host has no on-device model.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, runtime ondevice.Runtime) (*Stack, error) {
	db, err := pkgSqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	stack, err := build(ctx, cfg, l, runtime, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return stack, nil
}

func build(ctx context.Context, cfg *config.Config, l log.Logger, runtime ondevice.Runtime, db *sql.DB) (*Stack, error) {
	settings := kvstore.NewSQLite(db)
	tasks := taskSqlite.NewTaskRepository(db, l)
	categories := taskSqlite.NewCategoryRepository(db, l)

	secrets, osKeychain := keychain.New(cfg.Keychain.Service, cfg.Keychain.Disabled)
	if osKeychain {
		l.Infof(ctx, "Credentials stored in system keychain (service %s)", cfg.Keychain.Service)
	} else {
		l.Warn(ctx, "System keychain unavailable, credentials kept in memory only")
	}

	factory := llmprovider.NewFactory(cfg.LLM.RequestTimeout, runtime)
	router := llmprovider.NewRouter(ctx, settings, secrets, factory, l)
	if err := seedProviders(ctx, router, cfg.LLM, l); err != nil {
		return nil, err
	}

	learner, err := learning.New(ctx, settings, l, learningConfig(cfg.Learning))
	if err != nil {
		return nil, fmt.Errorf("learning store: %w", err)
	}

	agg, err := aicontext.New(ctx, tasks, categories, learner, settings, l)
	if err != nil {
		return nil, fmt.Errorf("context aggregator: %w", err)
	}

	return &Stack{
		UseCase: usecase.New(l, router, agg, learner, tasks, categories),
		Router:  router,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
		},
		db: db,
	}, nil
}

// seedProviders applies configured providers that have no stored configuration,
// then selects the default provider unless a selection was restored.
func seedProviders(ctx context.Context, router *llmprovider.Router, cfg config.LLMConfig, l log.Logger) error {
	for _, p := range cfg.Providers {
		stored := router.Configuration(ctx, p.ID)
		if stored.Endpoint != "" || stored.ModelID != "" {
			continue
		}
		err := router.Configure(ctx, llmprovider.Configuration{
			Endpoint:   p.Endpoint,
			ModelID:    p.Model,
			Credential: p.Credential,
		}, p.ID)
		if err != nil {
			return fmt.Errorf("seed provider %s: %w", p.ID, err)
		}
		l.Infof(ctx, "Seeded provider %s from config", p.ID)
	}

	if cfg.DefaultProvider != "" && router.ActiveProviderID() == llmprovider.DefaultProviderID {
		if active := router.SetActive(ctx, cfg.DefaultProvider); active != cfg.DefaultProvider {
			l.Warnf(ctx, "Configured default provider %s is unavailable, using %s", cfg.DefaultProvider, active)
		}
	}
	return nil
}

// learningConfig maps config onto the store's bounds; zero values keep the store defaults.
func learningConfig(cfg config.LearningConfig) learning.Config {
	return learning.Config{
		CorrectionCapacity: cfg.CorrectionCapacity,
		AccuracyCapacity:   cfg.AccuracyCapacity,
		ImpressionCapacity: cfg.ImpressionCapacity,
		MaxAge:             time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
	}
}
