package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/allodocta/backoffice/internal/flagx"
	"github.com/allodocta/backoffice/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JSONConfig struct {
	BaseURL        string         `json:"base_url"`
	UploadURL      string         `json:"upload_url"`
	UploadPreset   string         `json:"upload_preset"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CredentialsDSN string         `json:"credentials_db"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. When no file is given the function is a no-op.
// Read or unmarshal errors panic; config is resolved once at startup and a
// broken file should stop the program immediately.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.UploadURL != "" {
		cfg.UploadURL = jc.UploadURL
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialsDSN != "" {
		cfg.CredentialsDSN = jc.CredentialsDSN
	}
}
