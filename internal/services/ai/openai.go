// openai.go adapts the OpenAI chat completions API to the Provider
// capability using the sashabaranov/go-openai client.
package ai

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

// maxCompletionTokens caps the size of a single analysis response.
const maxCompletionTokens = 1500

// OpenAI is the first-choice provider adapter. It supports a per-call
// temperature and a token ceiling.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an adapter talking to the hosted OpenAI API.
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewOpenAIFromClient creates an adapter around an existing client.
// Tests use this with a client pointed at a local httptest server.
func NewOpenAIFromClient(client *openai.Client, model string) *OpenAI {
	return &OpenAI{client: client, model: model}
}

// Complete runs one chat completion. The instruction rides as the system
// message and the document text as the user message, mirroring how every
// other adapter splits the two.
func (o *OpenAI) Complete(ctx context.Context, documentText, instruction string, temperature float32) models.AnalysisResult {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: temperature,
		MaxTokens:   maxCompletionTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: documentText},
		},
	})
	if err != nil {
		log.Printf("OpenAI request failed: %v", err)
		return failure("OpenAI request failed: " + err.Error())
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return failure("No response generated")
	}

	return models.AnalysisResult{
		Success: true,
		Content: resp.Choices[0].Message.Content,
	}
}
