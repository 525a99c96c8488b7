package config

import "time"

// Config holds runtime settings for the back-office CLI.
//
// Fields:
//   - BaseURL: base URL of the directory REST API.
//   - UploadURL: third-party media upload endpoint.
//   - UploadPreset: upload-preset identifier sent with each media upload.
//   - RequestTimeout: per-request timeout for the HTTP client.
//   - CredentialsDSN: path of the local sqlite credentials database.
type Config struct {
	BaseURL        string
	UploadURL      string
	UploadPreset   string
	RequestTimeout time.Duration
	CredentialsDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.UploadURL = ""
	c.UploadPreset = ""
	c.RequestTimeout = 30 * time.Second
	c.CredentialsDSN = "backoffice.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given) and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
