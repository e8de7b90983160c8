package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every external knob the application needs. It is built once
// in main and injected into constructors; nothing reads the environment after
// startup, and the Stripe key is never a package-level singleton.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	StripeSecretKey string
	FrontendURL     string
	AllowedOrigins  []string
}

func Load() *Config {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_PUBLIC_URL")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URL")
	}
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        mongoURI,
		MongoDatabase:   getEnv("MONGO_DB", "ecommerce"),
		JWTSecret:       getEnv("JWT_SECRET", "SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	origins := getEnv("ALLOWED_ORIGINS", cfg.FrontendURL)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
