// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// No ORM magic — the database package handles persistence with raw SQL.
//
// JSON tags (e.g., `json:"id"`) control how struct fields are serialized
// to/from JSON. The `db` tags work with sqlx for database column mapping.
package models

import (
	"time"
)

// Role is the persona lens applied to an analysis.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
// Define a type alias and named constants — invalid values are rejected by
// the prompt catalog, not by the type system.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAnalyst   Role = "analyst"
	RoleLegal     Role = "legal"
	RoleGeneral   Role = "general"
)

// AnalysisType is the specific transformation requested.
type AnalysisType string

const (
	AnalysisSummary   AnalysisType = "summary"
	AnalysisQuestions AnalysisType = "questions"
	AnalysisNotes     AnalysisType = "notes"
	AnalysisResume    AnalysisType = "resume"
	AnalysisTables    AnalysisType = "tables"
	AnalysisFinancial AnalysisType = "financial"
	AnalysisLegal     AnalysisType = "legal"
	AnalysisTopics    AnalysisType = "topics"
	AnalysisSimplify  AnalysisType = "simplify"
)

// Provider names one of the hosted AI completion services.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// SummaryStatus represents the processing state of a saved analysis.
type SummaryStatus string

const (
	StatusPending   SummaryStatus = "pending"
	StatusCompleted SummaryStatus = "completed"
)

// PDFSummary represents a saved document analysis owned by a user.
// Rows are immutable after insert — each new analysis is a new row,
// removed only by an owner-scoped delete.
type PDFSummary struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	OriginalFileURL string        `json:"original_file_url" db:"original_file_url"`
	SummaryText     string        `json:"summary_text" db:"summary_text"`
	Title           string        `json:"title" db:"title"`
	FileName        string        `json:"file_name" db:"file_name"`
	Status          SummaryStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// PDFSummaryListItem is the lightweight shape returned by list endpoints.
// The full summary_text can be large, so listings omit it.
type PDFSummaryListItem struct {
	ID        string        `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	FileName  string        `json:"file_name" db:"file_name"`
	Status    SummaryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// User represents an account that owns saved analyses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AnalysisRequest is the transient input to the analysis dispatcher.
// Constructed per user action and discarded after the call returns.
type AnalysisRequest struct {
	Text              string
	Role              Role
	AnalysisType      AnalysisType
	AdditionalContext string
	Provider          Provider
}

// AnalysisResult is the uniform shape every provider adapter returns.
// Adapters never raise across the call boundary — all failures are
// folded into Success=false with a human-readable Error.
type AnalysisResult struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// --- Request/Response DTOs (Data Transfer Objects) ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps your API contract clean and independent of your database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register/login with a fresh JWT.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateDocumentRequest is the JSON body for POST /api/v1/documents.
// The {url, name} pair is handed over by the external upload service —
// it is the only input crossing from the upload boundary into ingestion.
type CreateDocumentRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Name string `json:"name" binding:"required"`
}

// CreateAnalysisRequest is the JSON body for POST /api/v1/analyses.
// Exactly one of DocumentID or Text supplies the document content.
type CreateAnalysisRequest struct {
	DocumentID        string       `json:"document_id,omitempty"`
	Text              string       `json:"text,omitempty"`
	Role              Role         `json:"role" binding:"required"`
	AnalysisType      AnalysisType `json:"analysis_type" binding:"required"`
	AdditionalContext string       `json:"additional_context,omitempty"`
	Provider          Provider     `json:"provider,omitempty"` // defaults to "openai"
	Save              bool         `json:"save,omitempty"`     // persist the result as a new row
}

// AnalysisResponse wraps the dispatcher result, plus the saved row ID
// when the caller asked for persistence.
type AnalysisResponse struct {
	AnalysisResult
	SavedID string `json:"saved_id,omitempty"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}
