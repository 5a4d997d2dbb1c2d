// extractor_test.go — Unit tests for PDF fetching and text extraction.
package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(5 * time.Second), srv.URL
}

// TestFetchAndExtract_Failures verifies the ingestion failure taxonomy:
// each bad response maps to its sentinel error, never a generic one.
func TestFetchAndExtract_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			},
			wantErr: ErrFetchFailed,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/pdf")
				w.WriteHeader(http.StatusOK)
			},
			wantErr: ErrEmptyDocument,
		},
		{
			name: "wrong content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("<html>an error page</html>"))
			},
			wantErr: ErrUnsupportedMediaType,
		},
		{
			name: "pdf content type but html payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/pdf")
				w.Write([]byte("<html>expired link</html>"))
			},
			wantErr: ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, url := newTestService(t, tt.handler)

			_, err := svc.FetchAndExtract(context.Background(), url)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchAndExtract error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchAndExtract_SendsAcceptHeader(t *testing.T) {
	var gotAccept string
	svc, url := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		http.Error(w, "gone", http.StatusGone)
	})

	svc.FetchAndExtract(context.Background(), url)

	if gotAccept != "application/pdf" {
		t.Errorf("Accept header = %q, want application/pdf", gotAccept)
	}
}

func TestFetchAndExtract_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := New(time.Second)
	_, err := svc.FetchAndExtract(context.Background(), url)
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("FetchAndExtract error = %v, want ErrFetchFailed", err)
	}
}

// TestJoinPages verifies page order is preserved and pages are separated
// by newlines.
func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{"empty", nil, ""},
		{"single page", []string{"page one"}, "page one"},
		{"order preserved", []string{"first", "second", "third"}, "first\nsecond\nthird"},
		{"surrounding whitespace trimmed", []string{"", "body", ""}, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinPages(tt.pages); got != tt.want {
				t.Errorf("joinPages(%q) = %q, want %q", tt.pages, got, tt.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"the quick brown fox", 4},
		{"  spaced   out\n\twords  ", 3},
	}

	for _, tt := range tests {
		if got := countWords(tt.text); got != tt.want {
			t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestValidatePDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid header", []byte("%PDF-1.7\n…"), true},
		{"html page", []byte("<html></html>"), false},
		{"too short", []byte("%PD"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePDF(tt.data); got != tt.want {
				t.Errorf("ValidatePDF = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestExtract_InvalidPDF verifies that bytes with a PDF header but broken
// structure surface a parse error rather than panicking.
func TestExtract_InvalidPDF(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.7 truncated garbage"))
	if err == nil {
		t.Error("expected an error for a structurally invalid PDF")
	}
}
