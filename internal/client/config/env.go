package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not override).
//
// Recognized variables:
//
//	BASE_URL        — directory API base URL
//	UPLOAD_URL      — media upload endpoint
//	UPLOAD_PRESET   — media upload preset identifier
//	CREDENTIALS_DB  — path of the local credentials database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("UPLOAD_URL"); v != "" {
		cfg.UploadURL = v
	}
	if v := os.Getenv("UPLOAD_PRESET"); v != "" {
		cfg.UploadPreset = v
	}
	if v := os.Getenv("CREDENTIALS_DB"); v != "" {
		cfg.CredentialsDSN = v
	}
}
