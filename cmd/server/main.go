// Package main is the entry point for the PDF Insights API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docuwise/pdf-insights-api/internal/config"
	"github.com/docuwise/pdf-insights-api/internal/database"
	"github.com/docuwise/pdf-insights-api/internal/models"
	"github.com/docuwise/pdf-insights-api/internal/router"
	"github.com/docuwise/pdf-insights-api/internal/services/ai"
	"github.com/docuwise/pdf-insights-api/internal/services/ingest"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 PDF Insights API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s", cfg.Port, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Create Services
	// Provider adapters are constructed here and injected — their lifecycle
	// belongs to the caller, not to package-level globals.
	dispatcher := ai.NewDispatcher()
	if cfg.OpenAIAPIKey != "" {
		dispatcher.Register(models.ProviderOpenAI, ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel))
		log.Println("✅ OpenAI provider enabled")
	} else {
		log.Println("⚠️  OpenAI provider disabled (set OPENAI_API_KEY to enable)")
	}
	if cfg.GeminiAPIKey != "" {
		dispatcher.Register(models.ProviderGemini, ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.CompletionTimeout))
		log.Println("✅ Gemini provider enabled")
	} else {
		log.Println("⚠️  Gemini provider disabled (set GEMINI_API_KEY to enable)")
	}

	ingestService := ingest.New(cfg.FetchTimeout)

	// Step 4: Setup HTTP Router
	r := router.Setup(db, dispatcher, ingestService, cfg.JWTSecret, cfg.DefaultRateLimit, cfg.AllowedOrigins)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CompletionTimeout + 10*time.Second, // analyses wait on the LLM
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
