package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment-driven settings. Values are read once at
// startup and passed into the services that need them.
type Config struct {
	MongoURI    string
	DBName      string
	TokenSecret string
	StripeKey   string
	Port        string
}

// Load reads configuration from the environment. Required variables that are
// missing are collected and reported in a single error.
func Load() (*Config, error) {
	cfg := &Config{}
	var missing []string

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		// Fall back to Atlas-style credentials when a full URI is not given.
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		cluster := os.Getenv("DB_CLUSTER")
		if user != "" && pass != "" && cluster != "" {
			cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, cluster)
		} else {
			cfg.MongoURI = "mongodb://localhost:27017"
		}
	}

	cfg.DBName = os.Getenv("DB_NAME")
	if cfg.DBName == "" {
		cfg.DBName = "kidcare"
	}

	cfg.TokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	if cfg.TokenSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}

	cfg.StripeKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.StripeKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "5200"
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
