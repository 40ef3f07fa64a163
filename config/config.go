package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portfolio-backend/internal/domain"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// JWT verification: HS256 via shared secret, RS256 via JWKS endpoint.
	JWTSecret string
	JWKSUrl   string
	// Path to the portfolio owner YAML document
	OwnerProfilePath string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBUrl:            getEnv("DATABASE_URL", ""),
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWKSUrl:          getEnv("AUTH_JWKS_URL", ""),
		OwnerProfilePath: getEnv("OWNER_PROFILE_PATH", "config/owner.yml"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSUrl == "" {
		log.Println("WARNING: neither JWT_SECRET nor AUTH_JWKS_URL is set. Authenticated routes will reject all tokens.")
	}

	return cfg, nil
}

// LoadOwnerProfile reads the static portfolio-owner document. It is config,
// not business logic, so a broken or missing file fails startup.
func LoadOwnerProfile(path string) (*domain.OwnerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read owner profile: %w", err)
	}

	var profile domain.OwnerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse owner profile: %w", err)
	}
	if profile.Name == "" {
		return nil, fmt.Errorf("owner profile %s: name is empty", path)
	}
	return &profile, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
