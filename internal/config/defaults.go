package config

import "time"

const (
	DefaultSeedMoney    = 10
	DefaultRankStep     = 10
	DefaultProductsFile = "data/products.json"
	DefaultTargetsFile  = "data/targets.json"
	DefaultPort         = 8080
	DefaultCacheSize    = 128
	DefaultCacheTTL     = 10 * time.Minute
	DefaultRateRequests = 20
	DefaultRateBurst    = 40
)

// SetDefaults fills every zero field with its default. Seed money is left
// alone since zero is a valid seed; viper defaults it in LoadConfig.
func SetDefaults(cfg *Config) {
	if cfg.Planner.RankStep == 0 {
		cfg.Planner.RankStep = DefaultRankStep
	}

	if cfg.Data.Products == "" {
		cfg.Data.Products = DefaultProductsFile
	}
	if cfg.Data.Targets == "" {
		cfg.Data.Targets = DefaultTargetsFile
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.CacheSize == 0 {
		cfg.Server.CacheSize = DefaultCacheSize
	}
	if cfg.Server.CacheTTL == 0 {
		cfg.Server.CacheTTL = DefaultCacheTTL
	}
	if cfg.Server.RateLimit.Requests == 0 {
		cfg.Server.RateLimit.Requests = DefaultRateRequests
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = DefaultRateBurst
	}
}
