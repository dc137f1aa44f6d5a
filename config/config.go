package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Front-end asset URLs baked into the page shell.
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"
)

// Config carries everything the service reads from the environment. It is
// built once in main and handed to the handlers by reference, so request
// logic never reaches into process state on its own.
type Config struct {
	Port string

	// Marketplace metadata API.
	APIToken        string
	APIBaseURL      string
	MarketplaceID   string
	CategoryID      string
	UpstreamTimeout time.Duration

	// FanoutProperty is the one filter dimension that may carry multiple
	// values on a single lookup (Year for every deployment so far).
	FanoutProperty string

	// TableColumns is the rendered column set, a per-deployment policy.
	TableColumns []string

	CORSOrigins  string
	RateLimitMax int
	RateLimitExp time.Duration

	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
}

// Load reads the configuration from the environment, applying defaults for
// everything except FITMENT_API_TOKEN. The credential has no safe default;
// handlers reject requests with 401 while it is unset.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("fitment_api_url", "https://api.sandbox.marketplace.example/metadata/v1")
	v.SetDefault("fitment_marketplace_id", "EBAY_US")
	v.SetDefault("fitment_category_id", "6028")
	v.SetDefault("fitment_upstream_timeout", 10*time.Second)
	v.SetDefault("fitment_fanout_property", "Year")
	v.SetDefault("fitment_table_columns", "Year,Make,Model,Trim,Engine,Notes")
	v.SetDefault("fitment_cors_origins", "*")
	v.SetDefault("fitment_rate_limit_max", 100)
	v.SetDefault("fitment_rate_limit_exp", 1*time.Minute)
	v.SetDefault("fitment_read_timeout", 30*time.Second)
	v.SetDefault("fitment_write_timeout", 30*time.Second)

	return &Config{
		Port:               v.GetString("port"),
		APIToken:           v.GetString("fitment_api_token"),
		APIBaseURL:         strings.TrimRight(v.GetString("fitment_api_url"), "/"),
		MarketplaceID:      v.GetString("fitment_marketplace_id"),
		CategoryID:         v.GetString("fitment_category_id"),
		UpstreamTimeout:    v.GetDuration("fitment_upstream_timeout"),
		FanoutProperty:     v.GetString("fitment_fanout_property"),
		TableColumns:       splitColumns(v.GetString("fitment_table_columns")),
		CORSOrigins:        v.GetString("fitment_cors_origins"),
		RateLimitMax:       v.GetInt("fitment_rate_limit_max"),
		RateLimitExp:       v.GetDuration("fitment_rate_limit_exp"),
		ServerReadTimeout:  v.GetDuration("fitment_read_timeout"),
		ServerWriteTimeout: v.GetDuration("fitment_write_timeout"),
	}
}

func splitColumns(s string) []string {
	var cols []string
	for _, col := range strings.Split(s, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	return cols
}
