package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Breaker  BreakerConfig  `mapstructure:"breaker"`
	Throttle ThrottleConfig `mapstructure:"throttle"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type OpenAIConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	APIEndpoint    string        `mapstructure:"endpoint"`
	Model          string        `mapstructure:"model"`
	Temperature    float64       `mapstructure:"temperature"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"`
	ResetTimeout     time.Duration `mapstructure:"reset_timeout"`
}

type ThrottleConfig struct {
	Floor   time.Duration `mapstructure:"floor"`
	Ceiling time.Duration `mapstructure:"ceiling"`
}

type CacheConfig struct {
	SentimentCapacity int `mapstructure:"sentiment_capacity"`
	InsightCapacity   int `mapstructure:"insight_capacity"`
	SummaryCapacity   int `mapstructure:"summary_capacity"`
}

type AnalyzerConfig struct {
	// LocalConcurrency bounds concurrent local batches; 0 means NumCPU.
	LocalConcurrency int `mapstructure:"local_concurrency"`

	// RemoteConcurrency bounds in-flight remote batches. Kept low so the
	// throttle's minimum interval stays meaningful.
	RemoteConcurrency int `mapstructure:"remote_concurrency"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.temperature", 0.2)
	v.SetDefault("openai.request_timeout", 30*time.Second)

	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.reset_timeout", 30*time.Second)

	v.SetDefault("throttle.floor", 100*time.Millisecond)
	v.SetDefault("throttle.ceiling", time.Second)

	v.SetDefault("cache.sentiment_capacity", 1000)
	v.SetDefault("cache.insight_capacity", 1000)
	v.SetDefault("cache.summary_capacity", 1000)

	v.SetDefault("analyzer.local_concurrency", 0)
	v.SetDefault("analyzer.remote_concurrency", 2)

	v.SetEnvPrefix("FEEDBACKLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded successfully")
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Breaker.FailureThreshold < 1 {
		return fmt.Errorf("breaker.failure_threshold must be >= 1, got %d", c.Breaker.FailureThreshold)
	}
	if c.Throttle.Floor <= 0 || c.Throttle.Ceiling < c.Throttle.Floor {
		return fmt.Errorf("invalid throttle bounds: floor=%v ceiling=%v", c.Throttle.Floor, c.Throttle.Ceiling)
	}
	if c.Cache.SentimentCapacity < 1 || c.Cache.InsightCapacity < 1 || c.Cache.SummaryCapacity < 1 {
		return fmt.Errorf("cache capacities must be >= 1")
	}
	if c.Analyzer.RemoteConcurrency < 1 {
		return fmt.Errorf("analyzer.remote_concurrency must be >= 1, got %d", c.Analyzer.RemoteConcurrency)
	}
	return nil
}
