// Package config loads and validates mdcrawl configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper. CLI flags bind
// on top of these, so precedence is flags > env > file > defaults.
type Config struct {
	Crawler CrawlerConfig `mapstructure:"crawler"`
	Fetcher FetcherConfig `mapstructure:"fetcher"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// CrawlerConfig governs the crawl session.
type CrawlerConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	MaxPages  int    `mapstructure:"max_pages"`
	Index     bool   `mapstructure:"index"`
}

// FetcherConfig governs the fetch-and-render primitive.
type FetcherConfig struct {
	UserAgent            string        `mapstructure:"user_agent"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	RenderEnabled        bool          `mapstructure:"render_enabled"`
	RenderTimeout        time.Duration `mapstructure:"render_timeout"`
	RespectRobots        bool          `mapstructure:"respect_robots"`
	Delay                time.Duration `mapstructure:"delay"`
	DetectorMinHTMLBytes int           `mapstructure:"detector_min_html_bytes"`
	DetectorKeywords     []string      `mapstructure:"detector_keywords"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// MetricsConfig controls the optional status server.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load builds a Config from disk and environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MDCRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crawler.output_dir", "output_md")
	v.SetDefault("crawler.max_pages", 0)
	v.SetDefault("crawler.index", true)
	v.SetDefault("fetcher.user_agent", "mdcrawl/0.1")
	v.SetDefault("fetcher.request_timeout", 15*time.Second)
	v.SetDefault("fetcher.render_enabled", true)
	v.SetDefault("fetcher.render_timeout", 25*time.Second)
	v.SetDefault("fetcher.respect_robots", false)
	v.SetDefault("fetcher.delay", 0)
	v.SetDefault("fetcher.detector_min_html_bytes", 0)
	v.SetDefault("fetcher.detector_keywords", []string{})
	v.SetDefault("logging.development", true)
	v.SetDefault("metrics.addr", "")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Crawler.OutputDir == "" {
		return fmt.Errorf("crawler.output_dir must be set")
	}
	if c.Crawler.MaxPages < 0 {
		return fmt.Errorf("crawler.max_pages must be >= 0")
	}
	if c.Fetcher.UserAgent == "" {
		return fmt.Errorf("fetcher.user_agent must be set")
	}
	if c.Fetcher.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher.request_timeout must be > 0")
	}
	if c.Fetcher.RenderEnabled && c.Fetcher.RenderTimeout <= 0 {
		return fmt.Errorf("fetcher.render_timeout must be > 0 when rendering is enabled")
	}
	if c.Fetcher.Delay < 0 {
		return fmt.Errorf("fetcher.delay must be >= 0")
	}
	if c.Fetcher.DetectorMinHTMLBytes < 0 {
		return fmt.Errorf("fetcher.detector_min_html_bytes must be >= 0")
	}
	return nil
}
