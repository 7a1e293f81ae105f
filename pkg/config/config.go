package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration shared by the collector and the extractor.
type Config struct {
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	MetricsAddr string `mapstructure:"METRICS_ADDR"`

	// Collector
	QueryURL     string `mapstructure:"QUERY_URL"`
	PageCount    int    `mapstructure:"PAGE_COUNT"`
	SiteBaseURL  string `mapstructure:"SITE_BASE_URL"`
	LinkSelector string `mapstructure:"LINK_SELECTOR"`

	// Extractor
	URLSource       string `mapstructure:"URL_SOURCE"` // "file" or "redis"
	RecordsFile     string `mapstructure:"RECORDS_FILE"`
	OutputDelimiter string `mapstructure:"OUTPUT_DELIMITER"`
	ExtractStrict   bool   `mapstructure:"EXTRACT_STRICT"`

	// Shared
	URLsFile string `mapstructure:"URLS_FILE"`

	FetchMode       string  `mapstructure:"FETCH_MODE"` // "http" or "chromedp"
	RequestTimeout  int     `mapstructure:"REQUEST_TIMEOUT"`
	PageLoadTimeout int     `mapstructure:"PAGE_LOAD_TIMEOUT"`
	RequestRPS      float64 `mapstructure:"REQUEST_RPS"`
	UserAgents      string  `mapstructure:"USER_AGENTS"` // "|" separated
	Proxies         string  `mapstructure:"PROXIES"`     // "," separated

	PostgresURL string `mapstructure:"POSTGRES_URL"`
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	RedisDB     int    `mapstructure:"REDIS_DB"`
	URLQueueKey string `mapstructure:"URL_QUEUE_KEY"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// A missing .env is fine: production runs are configured purely from the environment.
	_ = v.ReadInConfig()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ADDR", "")

	v.SetDefault("QUERY_URL", "http://ingatlan.com/listar/elado+lakas+nem-berleti-jog+tegla-epitesu-lakas+budapest+v-vi-vii-ker")
	v.SetDefault("PAGE_COUNT", 199)
	v.SetDefault("SITE_BASE_URL", "http://ingatlan.com/")
	v.SetDefault("LINK_SELECTOR", "a.rowclick.rowClickCSS[href]")

	v.SetDefault("URL_SOURCE", "file")
	v.SetDefault("RECORDS_FILE", "listings.txt")
	v.SetDefault("OUTPUT_DELIMITER", ";")
	v.SetDefault("EXTRACT_STRICT", false)

	v.SetDefault("URLS_FILE", "listing_urls.txt")

	v.SetDefault("FETCH_MODE", "http")
	v.SetDefault("REQUEST_TIMEOUT", 30)   // seconds
	v.SetDefault("PAGE_LOAD_TIMEOUT", 60) // seconds
	v.SetDefault("REQUEST_RPS", 0)
	v.SetDefault("USER_AGENTS", "")
	v.SetDefault("PROXIES", "")

	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("URL_QUEUE_KEY", "harvester:urls")
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c *Config) PageLoadTimeoutDuration() time.Duration {
	return time.Duration(c.PageLoadTimeout) * time.Second
}

// UserAgentList splits USER_AGENTS. User agents contain commas, hence "|".
func (c *Config) UserAgentList() []string {
	return splitNonEmpty(c.UserAgents, "|")
}

func (c *Config) ProxyList() []string {
	return splitNonEmpty(c.Proxies, ",")
}

// Delimiter returns the first rune of OUTPUT_DELIMITER, defaulting to ';'.
func (c *Config) Delimiter() rune {
	for _, r := range c.OutputDelimiter {
		return r
	}
	return ';'
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
