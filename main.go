package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"weekendtraveller/config"
	"weekendtraveller/handlers"
	"weekendtraveller/services"
	"weekendtraveller/store"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	cfg := config.Load()

	// Destination dataset: loaded once, read-only afterwards. A missing
	// file is not fatal; search just returns empty results.
	destinations, err := store.Load(cfg.DataPath)
	if err != nil {
		log.Printf("⚠️  Could not load destination dataset (%v) — starting with an empty store", err)
		destinations = store.Empty()
	} else {
		log.Printf("✅ Loaded %d destinations from %s", destinations.Len(), cfg.DataPath)
	}

	// LLM client: nil when unconfigured, which turns every AI-backed step
	// into its deterministic fallback.
	var ai services.ChatCompleter
	if client := services.NewAIClient(cfg.OpenAIKey, cfg.OpenAIBase, cfg.Model); client != nil {
		ai = client
		log.Printf("✅ AI enrichment enabled with model %s", cfg.Model)
	} else {
		log.Println("⚠️  OPENAI_API_KEY not set — semantic matching and AI itineraries will use fallbacks")
	}

	pexels := services.NewPexelsClient(cfg.PexelsKey)
	if pexels == nil {
		log.Println("⚠️  PEXELS_API_KEY not set — primary media provider disabled")
	}
	unsplash := services.NewUnsplashClient(cfg.UnsplashKey)
	if unsplash == nil {
		log.Println("⚠️  UNSPLASH_ACCESS_KEY not set — secondary image provider disabled")
	}

	media := services.NewMediaEnricher(pexels, unsplash)
	matcher := services.NewQueryMatcher(destinations, ai, nil)
	generator := services.NewItineraryGenerator(ai)
	assembler := services.NewTripAssembler(destinations, matcher, media, generator)

	api := handlers.NewAPI(destinations, assembler, media, generator, []byte(cfg.JWTSecret))

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.Register(r)

	log.Printf("🚀 Weekend Traveller backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
