// analyses.go handles the analysis endpoint.
//
// POST /api/v1/analyses — run a role-specific AI analysis over a document
//
// The document text comes either from a saved document (document_id) or
// inline (text). The handler resolves the text, hands it to the analysis
// dispatcher, and — only when asked — persists a successful result as a
// new saved row. An analysis is all-or-nothing: no partial or streamed
// results.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docuwise/pdf-insights-api/internal/middleware"
	"github.com/docuwise/pdf-insights-api/internal/models"
)

// CreateAnalysis runs one analysis and returns the uniform result shape.
// POST /api/v1/analyses
//
// Request body:
//
//	{
//	  "document_id": "…",            // or "text": "…"
//	  "role": "student",
//	  "analysis_type": "summary",
//	  "additional_context": "…",     // job description / target audience
//	  "provider": "gemini",          // optional, defaults to "openai"
//	  "save": true                   // optional, persist the result
//	}
func (h *Handler) CreateAnalysis(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	var req models.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Provide 'role', 'analysis_type', and either 'document_id' or 'text'",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Resolve the document text. A document_id only resolves to documents
	// the caller owns; someone else's ID is a plain 404.
	text := req.Text
	var fromDocument *models.PDFSummary
	if req.DocumentID != "" {
		doc, err := h.DB.GetPDFSummaryForUser(c.Request.Context(), req.DocumentID, user.ID)
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Document not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		fromDocument = doc
		text = doc.SummaryText
	}

	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No document text to analyze — provide 'document_id' or 'text'",
			Code:    http.StatusBadRequest,
		})
		return
	}

	result := h.Dispatcher.RunAnalysis(c.Request.Context(), models.AnalysisRequest{
		Text:              text,
		Role:              req.Role,
		AnalysisType:      req.AnalysisType,
		AdditionalContext: req.AdditionalContext,
		Provider:          req.Provider,
	})

	resp := models.AnalysisResponse{AnalysisResult: result}

	// Persist on request. Each saved analysis is a brand-new row — results
	// are never updated in place.
	if req.Save && result.Success {
		saved := &models.PDFSummary{
			UserID:      user.ID,
			SummaryText: result.Content,
			Title:       analysisTitle(req, fromDocument),
			Status:      models.StatusCompleted,
		}
		if fromDocument != nil {
			saved.OriginalFileURL = fromDocument.OriginalFileURL
			saved.FileName = fromDocument.FileName
		}
		if err := h.DB.CreatePDFSummary(c.Request.Context(), saved); err != nil {
			// The analysis itself succeeded; surface the result and the
			// persistence failure together.
			log.Printf("Failed to save analysis result: %v", err)
			resp.Error = "Analysis succeeded but could not be saved"
		} else {
			resp.SavedID = saved.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}

// analysisTitle labels a saved analysis after its source document when
// there is one, falling back to the analysis type.
func analysisTitle(req models.CreateAnalysisRequest, doc *models.PDFSummary) string {
	label := string(req.AnalysisType) + " (" + string(req.Role) + ")"
	if doc != nil {
		return doc.Title + " — " + label
	}
	return formatFileNameAsTitle(label)
}
