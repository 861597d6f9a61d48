package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Telegram
	BotToken string

	// Backend selection: "memory" or "sheets"
	DataBackend string

	// Google Service Account credentials, one of the three
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string
	GoogleAppCredentials     string
}

func Load() *Config {
	return &Config{
		BotToken:    getEnv("BOT_TOKEN", ""),
		DataBackend: getEnv("DATA_BACKEND", "memory"),

		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		GoogleAppCredentials:     getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.BotToken) == "" {
		errs = append(errs, "BOT_TOKEN is required")
	}

	switch c.DataBackend {
	case "memory", "sheets":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [memory sheets]", c.DataBackend))
	}

	if c.DataBackend == "sheets" {
		hasCreds := c.GoogleServiceAccountJSON != "" || c.GoogleServiceAccountFile != "" || c.GoogleAppCredentials != ""
		if !hasCreds {
			errs = append(errs, "sheets backend requires GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS")
		}
		if c.GoogleServiceAccountFile != "" {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errs = append(errs, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
