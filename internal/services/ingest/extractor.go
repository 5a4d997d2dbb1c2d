// Package ingest downloads an uploaded PDF and extracts its text.
//
// We use the ledongthuc/pdf library for text extraction. It's a pure Go
// implementation — no CGO or external dependencies required, which keeps
// deployment to a single binary. Extraction relies entirely on the PDF's
// embedded text layer: no OCR, no layout reconstruction.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// Failure taxonomy for document ingestion. Handlers map these onto
// client-visible errors; none of them are retried.
var (
	ErrFetchFailed          = errors.New("failed to fetch PDF")
	ErrEmptyDocument        = errors.New("received empty PDF file")
	ErrUnsupportedMediaType = errors.New("file is not a PDF")
)

// Service fetches PDFs from the upload storage and extracts their text.
type Service struct {
	httpClient *http.Client
}

// New creates an ingestion service with a bounded fetch timeout.
func New(timeout time.Duration) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Result holds the output of one extraction.
type Result struct {
	Text      string // Concatenated page text, in page order
	PageCount int
	WordCount int
}

// FetchAndExtract downloads the PDF at pdfURL and returns its text.
//
// The URL comes from the external upload service — the {url, name} pair
// it hands over is the only input crossing into this package. One GET,
// no retries; the client timeout bounds the call.
func (s *Service) FetchAndExtract(ctx context.Context, pdfURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pdfURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	log.Printf("📄 Fetched PDF: %d bytes, content type %q", len(data), resp.Header.Get("Content-Type"))

	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "pdf") {
		return nil, fmt.Errorf("%w: got content type %q", ErrUnsupportedMediaType, contentType)
	}

	// Second line of defense: some hosts serve PDFs with a generic
	// content type, and some serve HTML error pages as "application/pdf".
	if !ValidatePDF(data) {
		return nil, fmt.Errorf("%w: missing PDF header", ErrUnsupportedMediaType)
	}

	return Extract(data)
}

// Extract parses the PDF bytes and concatenates each page's text in
// page order, separated by newlines.
//
// Go Pattern: We accept a byte slice instead of a filename because the
// data comes from an HTTP fetch (in memory), not a file on disk. The pdf
// library requires io.ReaderAt for random access to the PDF structure.
func Extract(data []byte) (*Result, error) {
	reader := bytes.NewReader(data)
	size := int64(len(data))

	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages carry only images — skip them, don't fail the document
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	extracted := joinPages(pages)
	return &Result{
		Text:      extracted,
		PageCount: pageCount,
		WordCount: countWords(extracted),
	}, nil
}

// joinPages concatenates page texts with a newline separator,
// preserving page order.
func joinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n"))
}

// countWords counts the number of words in a text string.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
