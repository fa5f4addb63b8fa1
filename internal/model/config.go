package model

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Parser      ParserConfig      `yaml:"parser" mapstructure:"parser"`
	Limits      LimitsConfig      `yaml:"limits" mapstructure:"limits"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ParserConfig configures the rich dependency-annotation backend.
// An empty APIKey disables it, which makes backend resolution fall
// back to the deterministic rule backend.
type ParserConfig struct {
	APIKey            string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL           string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Model             string  `yaml:"model,omitempty" mapstructure:"model"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`

	// Proxy settings for the annotation endpoint
	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// LimitsConfig holds the per-call analysis budgets. Zero means
// unlimited for every knob except Tolerance.
type LimitsConfig struct {
	MaxMillisPerChunk int64   `yaml:"max_millis_per_chunk" mapstructure:"max_millis_per_chunk"`
	MaxVerbs          int     `yaml:"max_verbs" mapstructure:"max_verbs"`
	MaxFrames         int     `yaml:"max_frames" mapstructure:"max_frames"`
	MaxConcepts       int     `yaml:"max_concepts" mapstructure:"max_concepts"`
	Tolerance         float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

// CacheConfig configures the in-memory token-sequence cache used by
// the rich backend.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig configures the batch worker pool. Each individual
// record analysis stays single-threaded.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // json or yaml
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns sensible defaults: rich backend disabled,
// unlimited budgets, 5% numeric tolerance.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Model:             "gpt-4o-mini",
			Timeout:           30,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Limits: LimitsConfig{
			Tolerance: 0.05,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}
