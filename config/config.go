package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	MongoURI           string        `mapstructure:"MONGODB_URI"`
	MongoDatabase      string        `mapstructure:"MONGODB_DATABASE"`
	DBOperationTimeout time.Duration `mapstructure:"DB_OPERATION_TIMEOUT"`

	// LLM configuration.
	LLMProvider         string        `mapstructure:"LLM_PROVIDER"`
	LLMModel            string        `mapstructure:"LLM_MODEL"`
	OpenAIAPIKey        string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL       string        `mapstructure:"OPENAI_BASE_URL"`
	GeminiAPIKey        string        `mapstructure:"GEMINI_API_KEY"`
	AIRequestTimeout    time.Duration `mapstructure:"AI_REQUEST_TIMEOUT"`
	AIMaxOutputTokens   int           `mapstructure:"AI_MAX_OUTPUT_TOKENS"`
	AIMaxRequestsPerMin int           `mapstructure:"AI_MAX_REQUESTS_PER_MIN"`

	// Rate limiting. TrustedProxies is a comma-separated list of IPs or CIDRs whose
	// X-Forwarded-For / X-Real-IP headers are believed; empty trusts none.
	TrustedProxies  string        `mapstructure:"TRUSTED_PROXIES"`
	RateLimitMax    int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	RateLimitStore  string        `mapstructure:"RATE_LIMIT_STORE"`

	// Redis configuration, only used when RATE_LIMIT_STORE=redis.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// ErrMissingMongoURI is returned by Validate when no store connection string is configured.
var ErrMissingMongoURI = errors.New("MONGODB_URI not set")

var defaults = map[string]interface{}{
	"PORT":                    "8000",
	"ENV":                     "development",
	"LOG_LEVEL":               "info",
	"MONGODB_URI":             "",
	"MONGODB_DATABASE":        "smart_resume",
	"DB_OPERATION_TIMEOUT":    5 * time.Second,
	"LLM_PROVIDER":            ProviderOpenAI,
	"LLM_MODEL":               "",
	"OPENAI_API_KEY":          "",
	"OPENAI_BASE_URL":         "https://api.openai.com/v1",
	"GEMINI_API_KEY":          "",
	"AI_REQUEST_TIMEOUT":      30 * time.Second,
	"AI_MAX_OUTPUT_TOKENS":    500,
	"AI_MAX_REQUESTS_PER_MIN": 0,
	"TRUSTED_PROXIES":         "",
	"RATE_LIMIT_MAX":          60,
	"RATE_LIMIT_WINDOW":       time.Minute,
	"RATE_LIMIT_STORE":        StoreMemory,
	"REDIS_ADDR":              "localhost:6379",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
}

// LoadConfig reads .env (if present), an optional config.yaml, and the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports configuration the process cannot start without.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLMProvider)
	}
	switch c.RateLimitStore {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unsupported RATE_LIMIT_STORE %q", c.RateLimitStore)
	}
	for _, proxy := range c.TrustedProxyList() {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy)
			}
		}
	}
	if c.RateLimitMax <= 0 {
		return errors.New("RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// IsProduction checks if the environment is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TrustedProxyList splits TrustedProxies, dropping blank entries.
func (c *Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

// LLMAPIKey returns the credential for the selected provider.
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
