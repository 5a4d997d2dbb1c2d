// dispatcher.go routes an analysis request to the right provider adapter.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/docuwise/pdf-insights-api/internal/models"
	"github.com/docuwise/pdf-insights-api/internal/services/prompt"
)

// Dispatcher resolves the instruction for a request and invokes the
// chosen provider adapter. It is stateless: no retries, no caching, no
// rate limiting, and no persistence — the caller decides whether to
// save a result.
type Dispatcher struct {
	providers map[models.Provider]Provider
}

// NewDispatcher creates a dispatcher with no providers registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{providers: make(map[models.Provider]Provider)}
}

// Register adds a provider adapter under its name. Adding a third
// provider is a Register call — the dispatch logic never changes.
func (d *Dispatcher) Register(name models.Provider, p Provider) {
	d.providers[name] = p
}

// RunAnalysis resolves the prompt for the request's (role, analysis type)
// pair and forwards the document text to the requested provider.
//
// Invalid combinations fail before any network call is made. The provider
// flag is honored as passed; when empty it defaults to OpenAI (the first
// analysis of a document goes there by convention, but the dispatcher
// keeps no such state itself).
func (d *Dispatcher) RunAnalysis(ctx context.Context, req models.AnalysisRequest) models.AnalysisResult {
	instruction, err := prompt.PromptFor(req.Role, req.AnalysisType, req.AdditionalContext)
	if err != nil {
		if errors.Is(err, prompt.ErrUnknownRole) {
			return failure("Invalid role selected")
		}
		return failure(fmt.Sprintf("Invalid analysis type for %s role", req.Role))
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = models.ProviderOpenAI
	}
	p, ok := d.providers[providerName]
	if !ok {
		return failure(fmt.Sprintf("Unknown analysis provider %q", providerName))
	}

	// Temperature is static policy keyed on the same pair the prompt
	// resolution just validated, so this cannot fail here.
	temperature, _ := prompt.TemperatureFor(req.Role, req.AnalysisType)

	log.Printf("🤖 Running %s analysis for %s role via %s", req.AnalysisType, req.Role, providerName)

	return p.Complete(ctx, req.Text, instruction, temperature)
}
