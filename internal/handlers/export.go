// export.go handles document export.
//
// Supported formats:
//   - txt — the stored text as-is
//   - md  — Markdown with a metadata header
//
// Go Pattern: Each export format is its own function. Adding a format
// later means a new case in the switch and a new formatter function.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docuwise/pdf-insights-api/internal/middleware"
	"github.com/docuwise/pdf-insights-api/internal/models"
)

// ExportDocument downloads a saved document's text in the requested format.
// GET /api/v1/documents/:id/export?format=txt|md
//
// Response headers are set for file download:
//   - Content-Type: appropriate MIME type
//   - Content-Disposition: attachment with filename
func (h *Handler) ExportDocument(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	format := c.DefaultQuery("format", "txt")

	// Validate format before doing any database work
	if format != "txt" && format != "md" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_format",
			Message: "Supported formats: txt, md",
			Code:    http.StatusBadRequest,
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

	// Sanitize the title for the Content-Disposition header — special
	// characters break filename parsing in some browsers.
	filename := sanitizeFilename(doc.Title)
	if filename == "" {
		filename = doc.ID
	}

	switch format {
	case "txt":
		exportTXT(c, doc, filename)
	case "md":
		exportMarkdown(c, doc, filename)
	}
}

// exportTXT returns the stored text as plain text.
func exportTXT(c *gin.Context, doc *models.PDFSummary, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.txt"`, filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.SummaryText))
}

// exportMarkdown returns the stored text as Markdown with a metadata header.
func exportMarkdown(c *gin.Context, doc *models.PDFSummary, filename string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", doc.Title))
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| File | %s |\n", doc.FileName))
	sb.WriteString(fmt.Sprintf("| Status | %s |\n", doc.Status))
	sb.WriteString(fmt.Sprintf("| Created | %s |\n", doc.CreatedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n---\n\n")
	sb.WriteString(doc.SummaryText)
	sb.WriteString("\n")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.md"`, filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(sb.String()))
}

// sanitizeFilename replaces characters that are unsafe in filenames
// and truncates overly long titles.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-",
	)
	clean := replacer.Replace(name)
	if len(clean) > 100 {
		clean = clean[:100]
	}
	return clean
}
