package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/doeshing/smartcmd-go/internal/ports"
)

const geminiProviderName = "gemini"

// contentGenerator is the slice of the genai Models service the completer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiCompleter sends the prompt as a single user turn to the Gemini API.
type geminiCompleter struct {
	models contentGenerator
	model  string
}

func newGeminiCompleter(ctx context.Context, apiKey, model string) (*geminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiCompleter{models: client.Models, model: model}, nil
}

func (g *geminiCompleter) Name() string {
	return geminiProviderName
}

// Complete implements ports.Completer.
func (g *geminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("generate content: empty response from %s", g.model)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generate content: no text in response from %s", g.model)
	}
	return text, nil
}

var _ ports.Completer = (*geminiCompleter)(nil)
