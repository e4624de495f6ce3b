package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for ulysses-guide.
type Config struct {
	Data     DataConfig     `toml:"data"`
	Server   ServerConfig   `toml:"server"`
	Analysis AnalysisConfig `toml:"analysis"`
	Geocode  GeocodeConfig  `toml:"geocode"`
	Extract  ExtractConfig  `toml:"extract"`
	Scrape   ScrapeConfig   `toml:"scrape"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// AnalysisConfig tunes segmentation and statistics. Speakers are matched
// in the order listed.
type AnalysisConfig struct {
	Speakers     []string `toml:"speakers"`
	NGramSize    int      `toml:"ngram_size"`
	TopNGrams    int      `toml:"top_ngrams"`
	MinTopicSize int      `toml:"min_topic_size"`
	Topics       int      `toml:"topics"`
}

type GeocodeConfig struct {
	Endpoint        string  `toml:"endpoint"`
	Locality        string  `toml:"locality"`
	UserAgent       string  `toml:"user_agent"`
	IntervalSeconds float64 `toml:"interval_seconds"`
	TimeoutSeconds  float64 `toml:"timeout_seconds"`
}

type ExtractConfig struct {
	Backend   string `toml:"backend"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
}

type ScrapeConfig struct {
	RateLimit float64 `toml:"rate_limit"`
	Selector  string  `toml:"selector"`
	Heading   string  `toml:"heading"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:   DataConfig{Dir: "data"},
		Server: ServerConfig{Host: "localhost", Port: 8080},
		Analysis: AnalysisConfig{
			Speakers: []string{
				"Buck Mulligan", "Stephen Dedalus", "Stephen", "Leopold Bloom",
				"Bloom", "Molly Bloom", "Molly", "Haines", "Mr Deasy",
			},
			NGramSize:    2,
			TopNGrams:    10,
			MinTopicSize: 3,
			Topics:       5,
		},
		Geocode: GeocodeConfig{
			Endpoint:        "https://nominatim.openstreetmap.org/search",
			Locality:        "Dublin, Ireland",
			UserAgent:       "UlyssesNLP/1.0",
			IntervalSeconds: 1,
			TimeoutSeconds:  10,
		},
		Extract: ExtractConfig{Backend: "ner", Model: "claude-sonnet-4-20250514", MaxTokens: 8192},
		Scrape:  ScrapeConfig{RateLimit: 1.0, Selector: "body p, body pre", Heading: "h2"},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot honour.
func (c *Config) Validate() error {
	if c.Analysis.NGramSize <= 0 {
		return fmt.Errorf("analysis.ngram_size must be positive, got %d", c.Analysis.NGramSize)
	}
	if c.Geocode.IntervalSeconds < 1 {
		return fmt.Errorf("geocode.interval_seconds must be at least 1, got %g", c.Geocode.IntervalSeconds)
	}
	if c.Scrape.RateLimit <= 0 {
		return fmt.Errorf("scrape.rate_limit must be positive, got %g", c.Scrape.RateLimit)
	}
	return nil
}

// GeocodeInterval is the pause between geocoding requests.
func (c *Config) GeocodeInterval() time.Duration {
	return time.Duration(c.Geocode.IntervalSeconds * float64(time.Second))
}

// GeocodeTimeout is the per-request geocoding timeout.
func (c *Config) GeocodeTimeout() time.Duration {
	return time.Duration(c.Geocode.TimeoutSeconds * float64(time.Second))
}
