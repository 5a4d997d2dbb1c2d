// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/docuwise/pdf-insights-api/internal/database"
	"github.com/docuwise/pdf-insights-api/internal/handlers"
	"github.com/docuwise/pdf-insights-api/internal/middleware"
	"github.com/docuwise/pdf-insights-api/internal/services/ai"
	"github.com/docuwise/pdf-insights-api/internal/services/ingest"
)

// Setup creates and configures the Gin router with all routes.
func Setup(db *database.DB, dispatcher *ai.Dispatcher, ing *ingest.Service, jwtSecret string, rateLimit int, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(allowedOrigins))

	h := handlers.NewHandler(db, dispatcher, ing, jwtSecret)
	rateLimiter := middleware.NewRateLimiter(rateLimit)

	// --- Public Routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)

	// API Documentation
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)

	// --- Auth Routes — public ---
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- JWT-protected routes ---
	// Everything that reads or writes user data requires an identity and
	// fails closed with 401 when none is present.
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(db, jwtSecret))
	protected.Use(rateLimiter.RateLimit())
	{
		protected.GET("/auth/me", h.GetMe)

		// Document endpoints
		protected.POST("/documents", h.CreateDocument)
		protected.GET("/documents", h.ListDocuments)
		protected.GET("/documents/:id", h.GetDocument)
		protected.GET("/documents/:id/export", h.ExportDocument)
		protected.DELETE("/documents/:id", h.DeleteDocument)

		// Analysis endpoint
		protected.POST("/analyses", h.CreateAnalysis)
	}

	return r
}
