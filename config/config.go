package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is loaded once at start and
// passed by value or pointer into constructors; nothing mutates it afterwards.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Support pipeline
	Classifier ClassifierConfig
	Chat       ChatConfig
	Support    SupportConfig
	Helpdesk   HelpdeskConfig
	Refund     RefundConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
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

// RateLimitConfig limits requests per client IP on the support endpoints.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxTrackedIPs  int
	IdleExpiry     time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type ClassifierConfig struct {
	Temperature float64
}

type ChatConfig struct {
	Temperature  float64
	MaxTokens    int
	FallbackText string
}

// SupportConfig carries the handler timeouts and fallback sentinels.
type SupportConfig struct {
	ExternalTimeout  time.Duration
	FallbackTicketID string
	FallbackSolution string
}

// HelpdeskConfig points at the ticketing and knowledge-base APIs.
type HelpdeskConfig struct {
	TicketURL        string
	KnowledgeBaseURL string
	Breaker          BreakerConfig
}

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold uint32
	OpenTimeout      time.Duration
	Interval         time.Duration
}

// RefundConfig selects and configures the refund datastore backend.
type RefundConfig struct {
	Backend     string            // memory | redis | sqlite
	Records     map[string]string // inline seed records for the memory backend
	RecordsFile string            // optional YAML file with more seed records
	Redis       RedisConfig
	SQLite      SQLiteConfig
}

type RedisConfig struct {
	URL string
	Key string
}

type SQLiteConfig struct {
	Path string
}

const (
	RefundBackendMemory = "memory"
	RefundBackendRedis  = "redis"
	RefundBackendSQLite = "sqlite"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from an explicit file when path is non-empty.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxTrackedIPs = v.GetInt("rate_limit.max_tracked_ips")
	cfg.RateLimit.IdleExpiry = v.GetDuration("rate_limit.idle_expiry")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Single-provider shortcut from the environment, e.g. OPENAI_API_KEY.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name: "openai", Enabled: true, Priority: 1, APIKey: key,
				Model: v.GetString("openai_model"), Timeout: "30s",
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Support pipeline
	cfg.Classifier.Temperature = v.GetFloat64("classifier.temperature")
	cfg.Chat.Temperature = v.GetFloat64("chat.temperature")
	cfg.Chat.MaxTokens = v.GetInt("chat.max_tokens")
	cfg.Chat.FallbackText = v.GetString("chat.fallback_text")

	cfg.Support.ExternalTimeout = v.GetDuration("support.external_timeout")
	cfg.Support.FallbackTicketID = v.GetString("support.fallback_ticket_id")
	cfg.Support.FallbackSolution = v.GetString("support.fallback_solution")

	cfg.Helpdesk.TicketURL = v.GetString("helpdesk.ticket_url")
	cfg.Helpdesk.KnowledgeBaseURL = v.GetString("helpdesk.knowledge_base_url")
	if cfg.Helpdesk.KnowledgeBaseURL == "" {
		cfg.Helpdesk.KnowledgeBaseURL = cfg.Helpdesk.TicketURL
	}
	cfg.Helpdesk.Breaker.Enabled = v.GetBool("helpdesk.breaker.enabled")
	cfg.Helpdesk.Breaker.FailureThreshold = v.GetUint32("helpdesk.breaker.failure_threshold")
	cfg.Helpdesk.Breaker.OpenTimeout = v.GetDuration("helpdesk.breaker.open_timeout")
	cfg.Helpdesk.Breaker.Interval = v.GetDuration("helpdesk.breaker.interval")

	cfg.Refund.Backend = v.GetString("refund.backend")
	cfg.Refund.Records = v.GetStringMapString("refund.records")
	cfg.Refund.RecordsFile = v.GetString("refund.records_file")
	cfg.Refund.Redis.URL = v.GetString("refund.redis.url")
	cfg.Refund.Redis.Key = v.GetString("refund.redis.key")
	cfg.Refund.SQLite.Path = v.GetString("refund.sqlite.path")

	if err := validateRefundConfig(&cfg.Refund); err != nil {
		return nil, fmt.Errorf("invalid refund config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.max_tracked_ips", 10000)
	v.SetDefault("rate_limit.idle_expiry", "10m")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "30s")
	v.SetDefault("openai_model", "gpt-4o-mini")

	v.SetDefault("classifier.temperature", 0.0)
	v.SetDefault("chat.temperature", 0.7)
	v.SetDefault("chat.max_tokens", 300)
	v.SetDefault("chat.fallback_text", "Thanks for reaching out! I'm having trouble responding right now, but a member of our support team will get back to you shortly.")

	v.SetDefault("support.external_timeout", "5s")
	v.SetDefault("support.fallback_ticket_id", "TECH-PENDING")
	v.SetDefault("support.fallback_solution", "Please try restarting the application and clearing the cache.")

	v.SetDefault("helpdesk.ticket_url", "http://localhost:8000")
	v.SetDefault("helpdesk.breaker.enabled", true)
	v.SetDefault("helpdesk.breaker.failure_threshold", 5)
	v.SetDefault("helpdesk.breaker.open_timeout", "30s")
	v.SetDefault("helpdesk.breaker.interval", "60s")

	v.SetDefault("refund.backend", RefundBackendMemory)
	v.SetDefault("refund.redis.key", "refunds")
	v.SetDefault("refund.sqlite.path", "refunds.db")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateRefundConfig(cfg *RefundConfig) error {
	switch cfg.Backend {
	case RefundBackendMemory:
	case RefundBackendRedis:
		if cfg.Redis.URL == "" {
			return fmt.Errorf("refund.redis.url is required for the redis backend")
		}
	case RefundBackendSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("refund.sqlite.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown refund backend %q", cfg.Backend)
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
