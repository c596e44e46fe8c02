package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, loaded once in main and passed
// down by injection. Handlers and stores never read the environment directly.
type Config struct {
	Port                string
	MongoURI            string
	MongoDatabase       string
	JWTSecret           string
	CloudinaryURL       string
	PlaceholderImageURL string
	CORSAllowedOrigins  []string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Ignore error if no .env file exists
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "traveljournal"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "/assets/placeholder.png"),
		CORSAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
