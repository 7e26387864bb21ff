package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names. FILEDROP_API_URL is the documented override
// for pointing the client at a different service instance.
const (
	EnvAPIURL      = "FILEDROP_API_URL"
	EnvDownloadDir = "FILEDROP_DOWNLOAD_DIR"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not overwrite).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvDownloadDir); v != "" {
		cfg.DownloadDir = v
	}
}
