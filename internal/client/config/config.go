package config

import "time"

// Config holds runtime settings for the filedrop CLI.
//
// Fields:
//   - BaseURL: base URL of the file-sharing API.
//   - RequestTimeout: per-request deadline for info and download calls and
//     the whole upload exchange.
//   - DownloadDir: where retrieved files are saved.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://filedrop-api.onrender.com"
	c.RequestTimeout = 60 * time.Second
	c.DownloadDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
