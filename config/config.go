package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Persistence
	Storage  StorageConfig
	Keychain KeychainConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Personalization
	Learning LearningConfig

	// Per-client API throttling
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	SQLitePath string // ":memory:" keeps everything in process
}

type KeychainConfig struct {
	Service  string
	Disabled bool // forces the in-memory secret store, e.g. on headless hosts
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	DefaultProvider string
	RequestTimeout  time.Duration
	Providers       []ProviderConfig
}

// ProviderConfig seeds a provider configuration on first start.
// Stored configuration always wins over a seed.
type ProviderConfig struct {
	ID         string `yaml:"id"`
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	Credential string `yaml:"credential"`
}

type LearningConfig struct {
	CorrectionCapacity int
	AccuracyCapacity   int
	ImpressionCapacity int
	MaxAgeDays         int
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Persistence
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	cfg.Keychain.Service = viper.GetString("keychain.service")
	cfg.Keychain.Disabled = viper.GetBool("keychain.disabled")

	// LLM Provider Abstraction
	cfg.LLM.DefaultProvider = viper.GetString("llm.default_provider")
	cfg.LLM.RequestTimeout = viper.GetDuration("llm.request_timeout")
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						ID:         getStringFromMap(providerMap, "id"),
						Endpoint:   expandEnvVar(getStringFromMap(providerMap, "endpoint")),
						Model:      getStringFromMap(providerMap, "model"),
						Credential: expandEnvVar(getStringFromMap(providerMap, "credential")),
					})
				}
			}
		}
	}

	// Personalization
	cfg.Learning.CorrectionCapacity = viper.GetInt("learning.correction_capacity")
	cfg.Learning.AccuracyCapacity = viper.GetInt("learning.accuracy_capacity")
	cfg.Learning.ImpressionCapacity = viper.GetInt("learning.impression_capacity")
	cfg.Learning.MaxAgeDays = viper.GetInt("learning.max_age_days")

	// Rate limit
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.sqlite_path", "task-intelligence.db")
	viper.SetDefault("keychain.service", "task-intelligence")
	viper.SetDefault("keychain.disabled", false)

	// LLM defaults
	viper.SetDefault("llm.default_provider", "")
	viper.SetDefault("llm.request_timeout", "60s")

	// Learning defaults
	viper.SetDefault("learning.correction_capacity", 100)
	viper.SetDefault("learning.accuracy_capacity", 100)
	viper.SetDefault("learning.impression_capacity", 200)
	viper.SetDefault("learning.max_age_days", 90)

	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1024)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required")
	}
	for i, p := range cfg.LLM.Providers {
		if p.ID == "" {
			return fmt.Errorf("llm.providers[%d]: id is required", i)
		}
	}
	if cfg.Learning.MaxAgeDays < 0 {
		return fmt.Errorf("learning.max_age_days must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
