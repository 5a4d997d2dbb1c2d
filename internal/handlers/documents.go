// documents.go handles the saved-document endpoints.
//
// POST   /api/v1/documents      — ingest an uploaded PDF and save its text
// GET    /api/v1/documents      — list the caller's saved documents
// GET    /api/v1/documents/:id  — fetch one saved document
// DELETE /api/v1/documents/:id  — delete one saved document
//
// Every operation is scoped to the authenticated user. A document ID that
// exists but belongs to someone else behaves exactly like a missing one.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docuwise/pdf-insights-api/internal/middleware"
	"github.com/docuwise/pdf-insights-api/internal/models"
	"github.com/docuwise/pdf-insights-api/internal/services/ingest"
)

// CreateDocument ingests an uploaded PDF and persists the extracted text.
// POST /api/v1/documents
//
// Request body:
//
//	{"url": "https://uploads.example.com/abc.pdf", "name": "report.pdf"}
//
// The {url, name} pair comes from the external upload service after a
// successful upload. Extraction is synchronous — PDFs process fast.
func (h *Handler) CreateDocument(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Provide 'url' and 'name' of the uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	result, err := h.Ingest.FetchAndExtract(c.Request.Context(), req.URL)
	if err != nil {
		log.Printf("PDF ingestion failed for %s: %v", req.Name, err)
		status, code := ingestErrorStatus(err)
		c.JSON(status, models.ErrorResponse{
			Error:   code,
			Message: err.Error(),
			Code:    status,
		})
		return
	}

	doc := &models.PDFSummary{
		UserID:          user.ID,
		OriginalFileURL: req.URL,
		SummaryText:     result.Text,
		Title:           formatFileNameAsTitle(req.Name),
		FileName:        req.Name,
		Status:          models.StatusCompleted,
	}

	if err := h.DB.CreatePDFSummary(c.Request.Context(), doc); err != nil {
		log.Printf("Failed to save document record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to save document",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments returns the caller's saved documents, newest first.
// GET /api/v1/documents
func (h *Handler) ListDocuments(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	items, err := h.DB.ListPDFSummariesForUser(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to list documents: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list documents",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if items == nil {
		items = []models.PDFSummaryListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// GetDocument returns one saved document, including its text.
// GET /api/v1/documents/:id
func (h *Handler) GetDocument(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	doc, err := h.DB.GetPDFSummaryForUser(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Document not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes one saved document owned by the caller.
// DELETE /api/v1/documents/:id
//
// A row owned by another user is reported as not found — cross-user
// deletion is denied silently, not with a 403.
func (h *Handler) DeleteDocument(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	removed, err := h.DB.DeletePDFSummaryForUser(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		log.Printf("Failed to delete document: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete document",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Document not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// ingestErrorStatus maps an ingestion failure onto an HTTP status and
// machine-readable error code.
func ingestErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ingest.ErrEmptyDocument):
		return http.StatusUnprocessableEntity, "empty_document"
	case errors.Is(err, ingest.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, ingest.ErrFetchFailed):
		return http.StatusBadGateway, "fetch_failed"
	default:
		return http.StatusInternalServerError, "extraction_failed"
	}
}

// formatFileNameAsTitle turns an uploaded filename into a display title:
// "quarterly_earnings-2024.pdf" → "Quarterly Earnings 2024".
func formatFileNameAsTitle(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	if len(words) == 0 {
		return fileName
	}
	return strings.Join(words, " ")
}
