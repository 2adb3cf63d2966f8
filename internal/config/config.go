// Package config loads and validates engine configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Headless   HeadlessConfig   `mapstructure:"headless"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Enrich     EnrichConfig     `mapstructure:"enrich"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig controls the local HTTP surface.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures the document fetcher.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// HeadlessConfig configures the headless rendering fallback.
type HeadlessConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxParallel   int  `mapstructure:"max_parallel"`
	NavTimeoutSec int  `mapstructure:"nav_timeout_seconds"`
}

// CacheConfig selects the backing store and TTLs per entity class.
type CacheConfig struct {
	Driver           string `mapstructure:"driver"`
	Dir              string `mapstructure:"dir"`
	EntityTTLMinutes int    `mapstructure:"entity_ttl_minutes"`
	SearchTTLMinutes int    `mapstructure:"search_ttl_minutes"`
}

// EngineConfig governs pipeline fan-out and defaults.
type EngineConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Fanout    int    `mapstructure:"fanout"`
	DefaultHl string `mapstructure:"default_hl"`
	DefaultGl string `mapstructure:"default_gl"`
}

// EnrichConfig holds the optional official-API credential.
type EnrichConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// ClassifierConfig tunes the short-form content classifier. The keyword
// lists are approximate and locale-specific, so they are configuration, not
// code, and may be hot-reloaded.
type ClassifierConfig struct {
	Keywords           []string `mapstructure:"keywords"`
	MaxDurationSeconds int      `mapstructure:"max_duration_seconds"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// EntityTTL returns the configured entity TTL as a duration.
func (c CacheConfig) EntityTTL() time.Duration {
	return time.Duration(c.EntityTTLMinutes) * time.Minute
}

// SearchTTL returns the configured search TTL as a duration.
func (c CacheConfig) SearchTTL() time.Duration {
	return time.Duration(c.SearchTTLMinutes) * time.Minute
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, *viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("TUBELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, v, nil
}

// Watch re-reads the config file on change and hands the new Config to
// onChange. Invalid updates are dropped; the previous config stays active.
func Watch(v *viper.Viper, onChange func(Config)) {
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			return
		}
		if err := cfg.Validate(); err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8480)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "")
	v.SetDefault("headless.enabled", false)
	v.SetDefault("headless.max_parallel", 2)
	v.SetDefault("headless.nav_timeout_seconds", 30)
	v.SetDefault("cache.driver", "sqlite")
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.entity_ttl_minutes", 30)
	v.SetDefault("cache.search_ttl_minutes", 10)
	v.SetDefault("engine.base_url", "https://www.youtube.com")
	v.SetDefault("engine.fanout", 6)
	v.SetDefault("engine.default_hl", "en")
	v.SetDefault("engine.default_gl", "US")
	v.SetDefault("classifier.keywords", []string{"#shorts", "#short", "#ytshorts"})
	v.SetDefault("classifier.max_duration_seconds", 65)
	v.SetDefault("logging.development", false)
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	if c.Cache.Driver != "sqlite" && c.Cache.Driver != "memory" {
		return fmt.Errorf("cache.driver must be sqlite or memory, got %q", c.Cache.Driver)
	}
	if c.Cache.EntityTTLMinutes <= 0 || c.Cache.SearchTTLMinutes <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Engine.Fanout <= 0 {
		return fmt.Errorf("engine.fanout must be positive, got %d", c.Engine.Fanout)
	}
	if c.Engine.BaseURL == "" {
		return fmt.Errorf("engine.base_url must not be empty")
	}
	return nil
}
