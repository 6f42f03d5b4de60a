package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Lead qualification specifics
	Conversation ConversationConfig
	History      HistoryConfig
	Profile      ProfileConfig
	Rules        RulesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// RateLimitConfig limits requests per client IP. Zero disables the limiter.
type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	CircuitBreaker  CircuitBreakerConfig
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type CircuitBreakerConfig struct {
	Enabled      bool
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// ConversationConfig tunes the chat flow.
type ConversationConfig struct {
	MinReplyDelay           time.Duration
	MaxReplyDelay           time.Duration
	ClassificationThreshold int
	Temperature             float64
	MaxTokens               int
}

// HistoryConfig bounds the in-memory history. Zero values mean unbounded.
type HistoryConfig struct {
	MaxEntries int
	Retention  time.Duration
}

type ProfileConfig struct {
	BusinessName  string
	Industry      string
	Location      string
	AgentName     string
	ResponseStyle string
}

type RulesConfig struct {
	HotCriteria     string
	ColdCriteria    string
	InvalidCriteria string
}

// Load loads configuration using Viper.
// A .env file is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// fromViper builds a Config from an already populated viper instance.
func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.CORS.AllowOrigins = splitList(v.GetStringSlice("cors.allow_origins"))
	cfg.CORS.AllowCredentials = v.GetBool("cors.allow_credentials")
	cfg.CORS.MaxAge = v.GetDuration("cors.max_age")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.CircuitBreaker = CircuitBreakerConfig{
		Enabled:      v.GetBool("llm.circuit_breaker.enabled"),
		MaxRequests:  v.GetUint32("llm.circuit_breaker.max_requests"),
		Interval:     v.GetDuration("llm.circuit_breaker.interval"),
		Timeout:      v.GetDuration("llm.circuit_breaker.timeout"),
		MinRequests:  v.GetUint32("llm.circuit_breaker.min_requests"),
		FailureRatio: v.GetFloat64("llm.circuit_breaker.failure_ratio"),
	}

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getDurationFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section fall back to a single REST provider keyed
	// from GEMINI_API_KEY so a bare .env is enough to start chatting.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   v.GetString("gemini_api_key"),
			Model:    v.GetString("gemini_model"),
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Conversation
	cfg.Conversation.MinReplyDelay = v.GetDuration("conversation.min_reply_delay")
	cfg.Conversation.MaxReplyDelay = v.GetDuration("conversation.max_reply_delay")
	cfg.Conversation.ClassificationThreshold = v.GetInt("conversation.classification_threshold")
	cfg.Conversation.Temperature = v.GetFloat64("conversation.temperature")
	cfg.Conversation.MaxTokens = v.GetInt("conversation.max_tokens")
	if cfg.Conversation.MaxReplyDelay < cfg.Conversation.MinReplyDelay {
		return nil, fmt.Errorf("conversation.max_reply_delay (%s) must not be below conversation.min_reply_delay (%s)",
			cfg.Conversation.MaxReplyDelay, cfg.Conversation.MinReplyDelay)
	}

	cfg.History.MaxEntries = v.GetInt("history.max_entries")
	cfg.History.Retention = v.GetDuration("history.retention")
	if cfg.History.MaxEntries < 0 {
		return nil, fmt.Errorf("history.max_entries must not be negative")
	}

	cfg.Profile = ProfileConfig{
		BusinessName:  v.GetString("profile.business_name"),
		Industry:      v.GetString("profile.industry"),
		Location:      v.GetString("profile.location"),
		AgentName:     v.GetString("profile.agent_name"),
		ResponseStyle: v.GetString("profile.response_style"),
	}
	cfg.Rules = RulesConfig{
		HotCriteria:     v.GetString("rules.hot_criteria"),
		ColdCriteria:    v.GetString("rules.cold_criteria"),
		InvalidCriteria: v.GetString("rules.invalid_criteria"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", "12h")

	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.max_clients", 10000)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.circuit_breaker.enabled", true)
	v.SetDefault("llm.circuit_breaker.max_requests", 1)
	v.SetDefault("llm.circuit_breaker.interval", "60s")
	v.SetDefault("llm.circuit_breaker.timeout", "30s")
	v.SetDefault("llm.circuit_breaker.min_requests", 3)
	v.SetDefault("llm.circuit_breaker.failure_ratio", 0.6)

	v.SetDefault("conversation.min_reply_delay", "1s")
	v.SetDefault("conversation.max_reply_delay", "3s")
	v.SetDefault("conversation.classification_threshold", 4)

	v.SetDefault("history.max_entries", 500)
	v.SetDefault("history.retention", "0s")

	v.SetDefault("profile.business_name", "GrowEasy Realtors")
	v.SetDefault("profile.industry", "real-estate")
	v.SetDefault("profile.location", "Mumbai, India")
	v.SetDefault("profile.agent_name", "Sarah")
	v.SetDefault("profile.response_style", "professional")

	v.SetDefault("rules.hot_criteria", "Budget defined, timeline < 6 months, specific requirements, ready to buy")
	v.SetDefault("rules.cold_criteria", "Vague requirements, no timeline, just browsing, price shopping")
	v.SetDefault("rules.invalid_criteria", "Spam, test entries, gibberish responses, unrelated inquiries")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.CircuitBreaker.FailureRatio < 0 || cfg.CircuitBreaker.FailureRatio > 1 {
		return fmt.Errorf("llm.circuit_breaker.failure_ratio must be within [0, 1]")
	}

	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
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
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getDurationFromMap(m map[string]interface{}, key string) time.Duration {
	s := getStringFromMap(m, key)
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
