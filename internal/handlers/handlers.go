// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// Go handlers are plain functions — no class inheritance. We group
// related handlers into a struct (Handler) that holds shared dependencies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docuwise/pdf-insights-api/internal/database"
	"github.com/docuwise/pdf-insights-api/internal/models"
	"github.com/docuwise/pdf-insights-api/internal/services/ai"
	"github.com/docuwise/pdf-insights-api/internal/services/ingest"
)

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler with fake dependencies.
type Handler struct {
	DB         *database.DB
	Dispatcher *ai.Dispatcher
	Ingest     *ingest.Service
	JWTSecret  string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, dispatcher *ai.Dispatcher, ing *ingest.Service, jwtSecret string) *Handler {
	return &Handler{
		DB:         db,
		Dispatcher: dispatcher,
		Ingest:     ing,
		JWTSecret:  jwtSecret,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	// Check database connectivity
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  "1.0.0",
		Database: dbStatus,
	})
}
