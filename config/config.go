// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strings"
)

// Config holds all settings for the Weekend Traveller API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// DataPath is the destination dataset JSON file. Defaults to
	// "data/destinations.json".
	DataPath string

	// CORSOrigins is the list of allowed cross-origin request origins.
	CORSOrigins []string

	// OpenAIKey enables LLM enrichment (semantic matching + itinerary
	// generation) when set. Empty means the deterministic fallbacks run.
	OpenAIKey  string
	OpenAIBase string
	Model      string

	// PexelsKey enables image + video search via Pexels.
	PexelsKey string

	// UnsplashKey enables the secondary image provider.
	UnsplashKey string

	// JWTSecret signs the demo login cookie.
	JWTSecret string
}

// Load reads configuration from environment variables. Every value has a
// working default; a key-less process runs fully on fallbacks.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8000"),
		DataPath:    getEnv("DATA_PATH", "data/destinations.json"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBase:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		PexelsKey:   os.Getenv("PEXELS_API_KEY"),
		UnsplashKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		JWTSecret:   getEnv("JWT_SECRET", "weekend-traveller-demo-secret"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
