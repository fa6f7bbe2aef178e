package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CIC_PLANNER_SEED_MONEY
const EnvPrefix = "CIC"

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

// PlannerConfig holds the purchase planner knobs
type PlannerConfig struct {
	// Money available before the first purchase
	SeedMoney float64 `mapstructure:"seed_money" validate:"gte=0"`

	// Desired ranks are rounded up to a multiple of this; 1 disables rounding
	RankStep int `mapstructure:"rank_step" validate:"gte=1"`
}

// DataConfig points at the catalog and target files
type DataConfig struct {
	Products string `mapstructure:"products" validate:"required"`
	Targets  string `mapstructure:"targets" validate:"required"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ServerConfig holds the plan API settings
type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"min=1,max=65535"`
	CacheSize int             `mapstructure:"cache_size" validate:"gte=1"`
	CacheTTL  time.Duration   `mapstructure:"cache_ttl" validate:"gt=0"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig bounds how many plans the API computes
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)
	v.SetDefault("planner.seed_money", float64(DefaultSeedMoney))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	cfg := &Config{Planner: PlannerConfig{SeedMoney: float64(DefaultSeedMoney)}}
	SetDefaults(cfg)
	return cfg
}

// bindKeys registers every key so AutomaticEnv also sees variables for
// keys that no config file mentions
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"planner.seed_money",
		"planner.rank_step",
		"data.products",
		"data.targets",
		"logging.level",
		"logging.format",
		"server.port",
		"server.cache_size",
		"server.cache_ttl",
		"server.rate_limit.requests",
		"server.rate_limit.burst",
	} {
		_ = v.BindEnv(key)
	}
}
