// gemini.go adapts Google's Gemini generateContent API to the Provider
// capability.
//
// There is no client library dependency here — the REST surface is a
// single JSON POST, so we use net/http directly with our own request and
// response structs.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini is the alternate provider adapter. It supports a per-call
// temperature only — no token ceiling.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGemini creates an adapter talking to the hosted Gemini API.
func NewGemini(apiKey, model string, timeout time.Duration) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetBaseURL overrides the API endpoint. Tests point this at a local
// httptest server.
func (g *Gemini) SetBaseURL(url string) {
	g.baseURL = strings.TrimSuffix(url, "/")
}

// --- Gemini API types ---
// These match the generativelanguage v1beta generateContent format.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float32 `json:"temperature"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Complete runs one generateContent call. The instruction becomes the
// system instruction and the document text rides as the sole content part.
func (g *Gemini) Complete(ctx context.Context, documentText, instruction string, temperature float32) models.AnalysisResult {
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: documentText}}}},
		GenerationConfig:  geminiGenerationConfig{Temperature: temperature},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return failure("failed to marshal Gemini request: " + err.Error())
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return failure("failed to create Gemini request: " + err.Error())
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("Gemini request failed: %v", err)
		return failure("Gemini request failed: " + err.Error())
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("failed to read Gemini response: " + err.Error())
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return failure(fmt.Sprintf("failed to parse Gemini response (status %d)", resp.StatusCode))
	}

	if genResp.Error != nil {
		return failure("Gemini error: " + genResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return failure(fmt.Sprintf("Gemini returned %d: %s", resp.StatusCode, string(body)))
	}

	text := collectText(genResp)
	if text == "" {
		return failure("No text generated from the model")
	}

	return models.AnalysisResult{
		Success: true,
		Content: text,
	}
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
