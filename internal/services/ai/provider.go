// Package ai contains the analysis dispatcher and the provider adapters
// it fans requests out to.
//
// Each hosted LLM service is wrapped in an adapter implementing Provider,
// so swapping or adding providers never touches the dispatcher. Adapters
// follow one contract: exactly one attempt per call, and every failure —
// transport error, provider error, empty completion — is folded into the
// returned AnalysisResult instead of an error or panic. Retry policy, if
// any, belongs to the caller.
package ai

import (
	"context"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

// Provider is the capability shared by all completion services: run one
// instruction over one document at a given temperature.
//
// The instruction is a system-level directive; the document text is the
// user-level payload. Adapters must keep that split when talking to
// their provider's wire format.
type Provider interface {
	Complete(ctx context.Context, documentText, instruction string, temperature float32) models.AnalysisResult
}

// failure builds the uniform failure shape.
func failure(message string) models.AnalysisResult {
	return models.AnalysisResult{
		Success: false,
		Content: "",
		Error:   message,
	}
}
