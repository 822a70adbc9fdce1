package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port                string
	IsProduction        bool
	FirebaseProjectID   string
	FirebaseCredentials string
	FirebaseWebAPIKey   string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		FirebaseProjectID:   v.GetString("FIREBASE_PROJECT_ID"),
		FirebaseCredentials: v.GetString("FIREBASE_CREDENTIALS_FILE"),
		FirebaseWebAPIKey:   v.GetString("FIREBASE_WEB_API_KEY"),
	}

	if cfg.FirebaseProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable not set")
	}
	if cfg.FirebaseWebAPIKey == "" {
		return nil, fmt.Errorf("FIREBASE_WEB_API_KEY environment variable not set")
	}
	return cfg, nil
}
