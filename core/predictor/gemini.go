package predictor

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"google.golang.org/genai"
)

//go:embed spending_prompt.md
var spendingPrompt string

var spendingTemplate = template.Must(template.New("spending").Parse(spendingPrompt))

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiPredictor asks a Gemini model for a structured prediction.
type GeminiPredictor struct {
	models contentGenerator
	model  string
}

// NewGeminiPredictor creates a predictor backed by the Gemini API.
func NewGeminiPredictor(ctx context.Context, cfg Config) (*GeminiPredictor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGeminiPredictor(client.Models, cfg.Model), nil
}

func newGeminiPredictor(models contentGenerator, model string) *GeminiPredictor {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiPredictor{models: models, model: model}
}

// responseSchema constrains the model output to a Prediction.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"predictedSpending": {
			Type:        genai.TypeNumber,
			Description: "The predicted monthly spending on groceries.",
		},
		"savingsOpportunities": {
			Type:        genai.TypeString,
			Description: "Suggestions for potential savings on grocery expenses.",
		},
	},
	Required: []string{"predictedSpending", "savingsOpportunities"},
}

// RenderPrompt renders the prediction prompt for a history.
func RenderPrompt(history []HistoryEntry) (string, error) {
	var buf bytes.Buffer
	if err := spendingTemplate.Execute(&buf, struct{ History []HistoryEntry }{history}); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// Predict sends the history to the model and decodes its JSON answer.
func (g *GeminiPredictor) Predict(ctx context.Context, history []HistoryEntry) (*Prediction, error) {
	prompt, err := RenderPrompt(history)
	if err != nil {
		return nil, err
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("no content generated")
	}

	var prediction Prediction
	if err := json.Unmarshal([]byte(text), &prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return &prediction, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
